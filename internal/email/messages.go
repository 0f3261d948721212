package email

import "fmt"

// CredentialsBody renders the welcome email sent when staff generates an
// account for a volunteer.
func CredentialsBody(username, password string) (subject, body string) {
	subject = "Credenciales de acceso - Huellitas"
	body = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Bienvenido a Huellitas</h2>
  <p>Se ha creado una cuenta para ti en el sistema del refugio.</p>
  <p><strong>Usuario:</strong> %s</p>
  <p><strong>Contrase&ntilde;a:</strong> %s</p>
  <p>Por favor cambia tu contrase&ntilde;a despu&eacute;s de iniciar sesi&oacute;n.</p>
</body>
</html>`, username, password)
	return subject, body
}

// ResetCodeBody renders the password reset email with its one-time code.
func ResetCodeBody(code int, ttlMinutes int) (subject, body string) {
	subject = "Recuperación de contraseña - Huellitas"
	body = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Recuperaci&oacute;n de contrase&ntilde;a</h2>
  <p>Tu c&oacute;digo de verificaci&oacute;n es:</p>
  <h1 style="letter-spacing: 4px;">%06d</h1>
  <p>El c&oacute;digo expira en %d minutos. Si no solicitaste este cambio, ignora este mensaje.</p>
</body>
</html>`, code, ttlMinutes)
	return subject, body
}
