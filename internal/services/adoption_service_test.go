package services_test

import (
	"testing"
	"time"

	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adoptionDate() models.Date {
	return models.NewDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
}

func TestAdoptDogSwapsTables(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 20, "Roco")

	err := services.AdoptDog(db, cipher, 20, adoptionDate(), services.OwnerInput{
		Name:      "Luis",
		Direction: "Av. Siempre Viva 123",
		Cellphone: "720455",
	})
	require.NoError(t, err)

	// Pool row is gone
	var pool models.AdoptionDog
	require.Error(t, db.First(&pool, 20).Error)

	// Adopted row exists and links an owner
	var adopted models.AdoptedDog
	require.NoError(t, db.First(&adopted, 20).Error)
	assert.Equal(t, "Roco", adopted.Name)
	assert.NotZero(t, adopted.OwnerID)

	// Owner PII is ciphertext at rest
	var owner models.Owner
	require.NoError(t, db.First(&owner, adopted.OwnerID).Error)
	assert.Equal(t, "Luis", owner.Name)
	assert.NotEqual(t, "Av. Siempre Viva 123", owner.Direction)
	assert.NotEqual(t, "720455", owner.Cellphone)

	// Reads decrypt back to the original values
	dog, err := services.GetAdoptedDog(db, cipher, 20)
	require.NoError(t, err)
	assert.Equal(t, "Av. Siempre Viva 123", dog.Owner.Direction)
	assert.Equal(t, "720455", dog.Owner.Cellphone)
}

func TestAdoptDogTwiceFails(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 20, "Roco")

	owner := services.OwnerInput{Name: "Luis", Direction: "Calle 1", Cellphone: "720455"}
	require.NoError(t, services.AdoptDog(db, cipher, 20, adoptionDate(), owner))

	err := services.AdoptDog(db, cipher, 20, adoptionDate(), owner)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestAdoptUnknownDog(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)

	err := services.AdoptDog(db, cipher, 99, adoptionDate(), services.OwnerInput{Name: "Luis"})
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestAdoptConflictRollsBack(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 7, "Nina")

	// An adopted row already occupies the id; the insert must fail and the
	// pool row must survive the rolled-back transaction.
	owner := models.Owner{Name: "Ana", Direction: "x", Cellphone: "x"}
	require.NoError(t, db.Create(&owner).Error)
	stale := models.AdoptedDog{
		DogProfile:  models.DogProfile{ID: 7, Name: "Nina", About: "x", Age: 3},
		AdoptedDate: adoptionDate(),
		OwnerID:     owner.ID,
	}
	require.NoError(t, db.Create(&stale).Error)

	err := services.AdoptDog(db, cipher, 7, adoptionDate(), services.OwnerInput{
		Name: "Luis", Direction: "Calle 1", Cellphone: "720455",
	})
	require.Error(t, err)
	assert.True(t, types.IsConflict(err))

	var pool models.AdoptionDog
	assert.NoError(t, db.First(&pool, 7).Error)
}

func TestUnadoptDeletesLastOwner(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 20, "Roco")

	owner := services.OwnerInput{Name: "Luis", Direction: "Calle 1", Cellphone: "720455"}
	require.NoError(t, services.AdoptDog(db, cipher, 20, adoptionDate(), owner))

	require.NoError(t, services.UnadoptDog(db, 20))

	// Dog is back in the pool
	var pool models.AdoptionDog
	assert.NoError(t, db.First(&pool, 20).Error)

	// Only dog of that owner, so the owner is gone too
	var owners int64
	db.Model(&models.Owner{}).Count(&owners)
	assert.Zero(t, owners)
}

func TestUnadoptKeepsOwnerWithOtherDogs(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 20, "Roco")
	helpers.CreateTestAdoptionDog(t, db, 21, "Nina")

	require.NoError(t, services.AdoptDog(db, cipher, 20, adoptionDate(), services.OwnerInput{
		Name: "Luis", Direction: "Calle 1", Cellphone: "720455",
	}))
	var first models.AdoptedDog
	require.NoError(t, db.First(&first, 20).Error)

	require.NoError(t, services.AdoptDogExistingOwner(db, cipher, 21, adoptionDate(), first.OwnerID))

	require.NoError(t, services.UnadoptDog(db, 20))

	var owner models.Owner
	assert.NoError(t, db.First(&owner, first.OwnerID).Error)
}

func TestAdoptExistingOwnerUnknownOwner(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 20, "Roco")

	err := services.AdoptDogExistingOwner(db, cipher, 20, adoptionDate(), 404)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestUnadoptUnknownDog(t *testing.T) {
	db := helpers.OpenTestDB(t)

	err := services.UnadoptDog(db, 42)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}
