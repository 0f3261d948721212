package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/huellitas/shelter-backend/internal/config"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/database"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB runs the service layer against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	dbImage := os.Getenv("DB_IMAGE")
	if dbImage == "" {
		dbImage = "mariadb:11"
	}

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	cipher, err := crypto.NewCipher(key)
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	t.Run("AdoptionWorkflow", func(t *testing.T) {
		testAdoptionWorkflow(t, db, cipher)
	})

	t.Run("ApplicantCapacity", func(t *testing.T) {
		testApplicantCapacity(t, db, cipher)
	})

	t.Run("PasswordReset", func(t *testing.T) {
		testPasswordReset(t, db)
	})
}

func testAdoptionWorkflow(t *testing.T, db *gorm.DB, cipher *crypto.Cipher) {
	dog := models.AdoptionDog{DogProfile: models.DogProfile{ID: 500, Name: "Roco", About: "x", Age: 2}}
	if err := db.Create(&dog).Error; err != nil {
		t.Fatalf("Failed to create pool dog: %v", err)
	}

	date := models.NewDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	err := services.AdoptDog(db, cipher, 500, date, services.OwnerInput{
		Name: "Luis", Direction: "Av. Central 45", Cellphone: "720455",
	})
	if err != nil {
		t.Fatalf("Adopt failed: %v", err)
	}

	// Duplicate-key translation works on the real driver
	var adopted models.AdoptedDog
	if err := db.First(&adopted, 500).Error; err != nil {
		t.Fatalf("Adopted row missing: %v", err)
	}
	if err := services.AdoptDog(db, cipher, 500, date, services.OwnerInput{Name: "Ana"}); err == nil {
		t.Fatal("Expected second adopt to fail")
	}

	if err := services.UnadoptDog(db, 500); err != nil {
		t.Fatalf("Unadopt failed: %v", err)
	}
	var owners int64
	db.Model(&models.Owner{}).Count(&owners)
	if owners != 0 {
		t.Errorf("Expected owner cleanup, got %d owners", owners)
	}
}

func testApplicantCapacity(t *testing.T, db *gorm.DB, cipher *crypto.Cipher) {
	course := models.Course{Name: "Curso", Description: "x", Price: 10, Capacity: 1}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to create course: %v", err)
	}

	input := services.ApplicantInput{
		FirstName: "Maria", LastName: "Lopez", Email: "maria@test.com", Cellphone: "720455",
	}
	input.CourseID = types.FlexUint64(course.ID)
	if _, err := services.CreateApplicant(db, cipher, input, nil); err != nil {
		t.Fatalf("First applicant failed: %v", err)
	}

	input.Email = "otra@test.com"
	if _, err := services.CreateApplicant(db, cipher, input, nil); err == nil {
		t.Fatal("Expected capacity rejection")
	}
}

func testPasswordReset(t *testing.T, db *gorm.DB) {
	if err := services.CreateUser(db, services.UserCreateInput{
		Username: "ana", Password: "Password1", Email: "ana@test.com", Role: models.RoleAuxiliar,
	}); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	token, err := services.GenerateResetCode(db, "ana@test.com", 15*time.Minute)
	if err != nil {
		t.Fatalf("Failed to generate code: %v", err)
	}
	if err := services.ResetPassword(db, token.Value, "Newpassword2"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, err := services.Authenticate(db, "ana", "Newpassword2"); err != nil {
		t.Errorf("New password rejected: %v", err)
	}
	if err := services.ResetPassword(db, token.Value, "Other3rdpass"); err == nil {
		t.Error("Expected consumed code to be rejected")
	}
}
