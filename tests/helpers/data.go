package helpers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an in-memory sqlite database with all models migrated.
// TranslateError stays on so duplicate-key detection behaves like production.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ResetToken{},
		&models.StaticDog{},
		&models.AdoptionDog{},
		&models.Owner{},
		&models.AdoptedDog{},
		&models.Visit{},
		&models.Course{},
		&models.Schedule{},
		&models.Applicant{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewTestCipher builds a PII cipher with a fixed test key
func NewTestCipher(t *testing.T) *crypto.Cipher {
	t.Helper()

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	cipher, err := crypto.NewCipher(key)
	if err != nil {
		t.Fatalf("Failed to create test cipher: %v", err)
	}
	return cipher
}

// CreateTestUser inserts an active account with a bcrypt password
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string, role models.Role) *models.User {
	t.Helper()

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		Username:       username,
		HashedPassword: hash,
		Email:          username + "@test.com",
		Role:           role,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return &user
}

// CreateTestAdoptionDog inserts a dog into the adoption pool
func CreateTestAdoptionDog(t *testing.T, db *gorm.DB, id uint, name string) *models.AdoptionDog {
	t.Helper()

	dog := models.AdoptionDog{
		DogProfile: models.DogProfile{
			ID:    id,
			Name:  name,
			About: "rescatado",
			Age:   3,
		},
	}
	if err := db.Create(&dog).Error; err != nil {
		t.Fatalf("Failed to create adoption dog: %v", err)
	}
	return &dog
}

// CreateTestCourse inserts a course with the given capacity
func CreateTestCourse(t *testing.T, db *gorm.DB, capacity int) *models.Course {
	t.Helper()

	course := models.Course{
		Name:        "Adiestramiento básico",
		Description: "Curso introductorio",
		Price:       50,
		Capacity:    capacity,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to create course: %v", err)
	}
	return &course
}
