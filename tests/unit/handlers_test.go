package unit

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/config"
	"github.com/huellitas/shelter-backend/internal/handlers"
	"github.com/huellitas/shelter-backend/internal/middleware"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/utils"
	"github.com/huellitas/shelter-backend/tests/helpers"
	"gorm.io/gorm"
)

var testJWTSecret = []byte("unit-test-secret")

func testConfig() *config.Config {
	return &config.Config{
		Port:                 "3000",
		APIURL:               "http://localhost:3000",
		JWTSecret:            testJWTSecret,
		TokenTTLMinutes:      30,
		ResetTokenTTLMinutes: 15,
		MaxImageBytes:        5 * 1024 * 1024,
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return utils.ErrorResponse(c, message, code, errorType)
}

// setupApp wires the routes under test the way the server does
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	cfg := testConfig()

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})

	authHandler := &handlers.AuthHandler{DB: db, Config: cfg}
	dogHandler := &handlers.DogHandler{DB: db, Cipher: cipher, MaxImageBytes: cfg.MaxImageBytes}
	applicantHandler := &handlers.ApplicantHandler{DB: db, Cipher: cipher, MaxImageBytes: cfg.MaxImageBytes, APIURL: cfg.APIURL}
	courseHandler := &handlers.CourseHandler{DB: db}

	authed := middleware.Auth(db, cfg.JWTSecret)
	staff := middleware.Require(middleware.ActionManageShelter)
	admin := middleware.Require(middleware.ActionManageUsers)
	applicantAdmin := middleware.Require(middleware.ActionViewApplicants)

	auth := app.Group("/auth")
	auth.Post("/token", authHandler.Token)
	auth.Post("/", authed, admin, authHandler.CreateUser)
	auth.Get("/users/", authed, admin, authHandler.ListUsers)

	dog := app.Group("/dog")
	static := dog.Group("/static_dog")
	static.Get("/", dogHandler.ListStaticDogs)
	static.Post("/create/", authed, staff, dogHandler.CreateStaticDog)

	adoption := dog.Group("/adoption_dog")
	adoption.Post("/create/", authed, staff, dogHandler.CreateAdoptionDog)
	adoption.Post("/adopt/:dog_id/:adoption_date", authed, staff, dogHandler.AdoptDog)

	adopted := dog.Group("/adopted_dog", authed, staff)
	adopted.Get("/:dog_id", dogHandler.GetAdoptedDog)
	adopted.Post("/unadopt/:dog_id/", dogHandler.UnadoptDog)

	course := app.Group("/course")
	course.Post("/create/", authed, staff, courseHandler.CreateCourse)

	applicant := app.Group("/applicant")
	applicant.Post("/create/", applicantHandler.CreateApplicant)
	applicant.Get("/course/:course_id/all/", authed, applicantAdmin, applicantHandler.ListApplicantsByCourse)

	return app, db
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute login request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected login status 200, got %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if body.TokenType != "bearer" {
		t.Errorf("Expected token_type bearer, got %s", body.TokenType)
	}
	return body.AccessToken
}

func jsonRequest(method, target, token string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body.Detail
}

// TestLoginBadCredentials tests POST /auth/token with a wrong password
func TestLoginBadCredentials(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "admin", "Password1", models.RoleAdmin)

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "WrongPass1")
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

// TestCreateStaticDog tests the login-then-create flow
func TestCreateStaticDog(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "admin", "Password1", models.RoleAdmin)
	token := login(t, app, "admin", "Password1")

	payload := map[string]interface{}{
		"id":         10,
		"name":       "Firulais",
		"about":      "rescatado",
		"age":        4,
		"entry_date": "2026-01-10",
	}
	resp, err := app.Test(jsonRequest("POST", "/dog/static_dog/create/", token, payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); detail != "Perro Permanente creado" {
		t.Errorf("Expected detail 'Perro Permanente creado', got %q", detail)
	}

	var dog models.StaticDog
	if err := db.First(&dog, 10).Error; err != nil {
		t.Fatalf("Dog was not persisted: %v", err)
	}
	if dog.Name != "Firulais" {
		t.Errorf("Expected name Firulais, got %s", dog.Name)
	}
}

// TestCreateStaticDogRequiresToken tests that mutations reject anonymous calls
func TestCreateStaticDogRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/dog/static_dog/create/", "", map[string]interface{}{"id": 1, "name": "x", "about": "x"}))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

// TestCreateUserRequiresAdminRole tests that auxiliar accounts cannot manage users
func TestCreateUserRequiresAdminRole(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "aux", "Password1", models.RoleAuxiliar)
	token := login(t, app, "aux", "Password1")

	payload := map[string]interface{}{
		"username": "nuevo",
		"password": "Password1",
		"email":    "nuevo@test.com",
		"role":     "auxiliar",
	}
	resp, err := app.Test(jsonRequest("POST", "/auth/", token, payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}
}

// TestCreateUserPasswordPolicy tests the password pattern rejection
func TestCreateUserPasswordPolicy(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "admin", "Password1", models.RoleAdmin)
	token := login(t, app, "admin", "Password1")

	payload := map[string]interface{}{
		"username": "nuevo",
		"password": "alllowercase",
		"email":    "nuevo@test.com",
		"role":     "auxiliar",
	}
	resp, err := app.Test(jsonRequest("POST", "/auth/", token, payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// TestAdoptionFlow tests adopt and unadopt through the HTTP surface
func TestAdoptionFlow(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "admin", "Password1", models.RoleAdmin)
	token := login(t, app, "admin", "Password1")

	// Create a pool dog
	payload := map[string]interface{}{
		"id":    20,
		"name":  "Roco",
		"about": "juguetón",
		"age":   2,
	}
	resp, err := app.Test(jsonRequest("POST", "/dog/adoption_dog/create/", token, payload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	// Adopt it with a new owner
	ownerPayload := map[string]interface{}{
		"name":      "Luis",
		"direction": "Av. Central 45",
		"cellphone": "720455",
	}
	resp, err = app.Test(jsonRequest("POST", "/dog/adoption_dog/adopt/20/2026-03-15", token, ownerPayload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); detail != "Perro Adoptado." {
		t.Errorf("Expected detail 'Perro Adoptado.', got %q", detail)
	}

	// The adopted record returns the decrypted owner
	req := httptest.NewRequest("GET", "/dog/adopted_dog/20", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var adopted struct {
		ID    uint `json:"id"`
		Owner struct {
			Name      string `json:"name"`
			Direction string `json:"direction"`
		} `json:"owner"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&adopted); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if adopted.Owner.Name != "Luis" {
		t.Errorf("Expected owner Luis, got %s", adopted.Owner.Name)
	}
	if adopted.Owner.Direction != "Av. Central 45" {
		t.Errorf("Expected decrypted direction, got %s", adopted.Owner.Direction)
	}

	// Adopting again returns not found: the dog left the pool
	resp, err = app.Test(jsonRequest("POST", "/dog/adoption_dog/adopt/20/2026-03-15", token, ownerPayload))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	// Unadopt returns it to the pool
	req = httptest.NewRequest("POST", "/dog/adopted_dog/unadopt/20/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); detail != "Perro des adoptado." {
		t.Errorf("Expected detail 'Perro des adoptado.', got %q", detail)
	}

	var pool models.AdoptionDog
	if err := db.First(&pool, 20).Error; err != nil {
		t.Errorf("Dog did not return to the pool: %v", err)
	}
}

// TestErrorEnvelope tests the error response shape
func TestErrorEnvelope(t *testing.T) {
	app, db := setupApp(t)
	helpers.CreateTestUser(t, db, "admin", "Password1", models.RoleAdmin)
	token := login(t, app, "admin", "Password1")

	req := httptest.NewRequest("GET", "/dog/adopted_dog/99", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}

	var envelope map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if envelope["ok"] != false {
		t.Error("Expected ok=false in error envelope")
	}
	if envelope["type"] != "not_found" {
		t.Errorf("Expected type not_found, got %v", envelope["type"])
	}
	if envelope["message"] == "" {
		t.Error("Expected a message in the error envelope")
	}
}
