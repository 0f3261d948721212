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

func TestCreateVisitEncryptsEvidence(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 30, "Toby")
	require.NoError(t, services.AdoptDog(db, cipher, 30, adoptionDate(), services.OwnerInput{
		Name: "Luis", Direction: "Calle 1", Cellphone: "720455",
	}))

	evidence := []byte("jpeg-bytes")
	visit, err := services.CreateVisit(db, cipher, services.VisitInput{
		VisitDate:    models.NewDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		Observations: "Todo bien",
		AdoptedDogID: 30,
	}, evidence)
	require.NoError(t, err)

	// Stored bytes are ciphertext
	var raw models.Visit
	require.NoError(t, db.First(&raw, visit.ID).Error)
	assert.NotEqual(t, evidence, []byte(raw.Evidence))

	// The evidence endpoint decrypts
	plain, err := services.VisitEvidence(db, cipher, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, evidence, plain)
}

func TestCreateVisitUnknownDog(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)

	_, err := services.CreateVisit(db, cipher, services.VisitInput{AdoptedDogID: 99}, nil)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestVisitEvidenceMissing(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 30, "Toby")
	require.NoError(t, services.AdoptDog(db, cipher, 30, adoptionDate(), services.OwnerInput{
		Name: "Luis", Direction: "Calle 1", Cellphone: "720455",
	}))

	visit, err := services.CreateVisit(db, cipher, services.VisitInput{AdoptedDogID: 30}, nil)
	require.NoError(t, err)

	_, err = services.VisitEvidence(db, cipher, visit.ID)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestUnadoptCascadesVisits(t *testing.T) {
	db := helpers.OpenTestDB(t)
	cipher := helpers.NewTestCipher(t)
	helpers.CreateTestAdoptionDog(t, db, 30, "Toby")
	require.NoError(t, services.AdoptDog(db, cipher, 30, adoptionDate(), services.OwnerInput{
		Name: "Luis", Direction: "Calle 1", Cellphone: "720455",
	}))

	_, err := services.CreateVisit(db, cipher, services.VisitInput{AdoptedDogID: 30}, nil)
	require.NoError(t, err)

	require.NoError(t, services.UnadoptDog(db, 30))

	visits, err := services.ListVisitsByDog(db, 30)
	require.NoError(t, err)
	assert.Empty(t, visits)
}
