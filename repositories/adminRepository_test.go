package repositories

import (
	"ClinicRecords/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeSeedsSampleData(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db, nil)
	ctx := context.Background()

	err := repo.Initialize(ctx)
	assert.NoError(t, err)

	assert.Equal(t, int64(5), tableCount(t, db, &models.Person{}))
	assert.Equal(t, int64(6), tableCount(t, db, &models.PersonPhoneNumber{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Patient{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Doctor{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Appointment{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.MedicalRecord{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Prescription{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Billing{}))
}

func TestInitializeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db, nil)
	ctx := context.Background()

	assert.NoError(t, repo.Initialize(ctx))
	assert.NoError(t, repo.Initialize(ctx))

	// A second run resets to the same fixed dataset rather than doubling it.
	assert.Equal(t, int64(5), tableCount(t, db, &models.Person{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Billing{}))
}

func TestWipeLeavesEveryTableEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db, nil)
	ctx := context.Background()

	assert.NoError(t, repo.Initialize(ctx))
	assert.NoError(t, repo.Wipe(ctx))

	for _, model := range []interface{}{
		&models.Billing{},
		&models.Prescription{},
		&models.MedicalRecord{},
		&models.Appointment{},
		&models.Doctor{},
		&models.Patient{},
		&models.PersonPhoneNumber{},
		&models.Person{},
	} {
		assert.Equal(t, int64(0), tableCount(t, db, model))
	}
}

func TestWipeOnEmptyStoreSucceeds(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db, nil)

	assert.NoError(t, repo.Wipe(context.Background()))
	assert.Equal(t, int64(0), tableCount(t, db, &models.Person{}))
}
