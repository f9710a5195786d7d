package repositories

import (
	"ClinicRecords/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePersonAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db, nil)
	ctx := context.Background()

	person := models.Person{FirstName: "Alice", LastName: "Walker", Email: "alice.walker@email.com", PhoneNumber: "416-555-0300"}
	err := repo.Create(ctx, &person)
	assert.NoError(t, err)
	assert.NotZero(t, person.PersonID)

	found, err := repo.GetByID(ctx, person.PersonID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", found.FirstName)
	assert.Equal(t, "416-555-0300", found.PhoneNumber)

	// A phone number on the person row does not create a
	// person_phone_number entry.
	assert.Equal(t, int64(0), tableCount(t, db, &models.PersonPhoneNumber{}))
}

func TestAnyExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db, nil)
	ctx := context.Background()

	exists, err := repo.AnyExists(ctx)
	assert.NoError(t, err)
	assert.False(t, exists)

	seedTestDB(t, db)

	exists, err = repo.AnyExists(ctx)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestDeletePatientPersonCascades(t *testing.T) {
	db := newTestDB(t)
	seedTestDB(t, db)
	repo := NewPersonRepository(db, nil)

	// Person 1 is a patient with one appointment, one medical record, one
	// prescription, one billing and two phone numbers.
	err := repo.DeletePersonAndRelated(context.Background(), 1)
	assert.NoError(t, err)

	assert.Equal(t, int64(4), tableCount(t, db, &models.Person{}))
	assert.Equal(t, int64(4), tableCount(t, db, &models.PersonPhoneNumber{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Patient{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Doctor{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Appointment{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.MedicalRecord{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.Prescription{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Billing{}))

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestDeleteDoctorPersonCascades(t *testing.T) {
	db := newTestDB(t)
	seedTestDB(t, db)
	repo := NewPersonRepository(db, nil)

	// Person 3 is the cardiologist on appointments 1 and 3, which pull in
	// medical record 1, prescription 1 and billings 1 and 3.
	err := repo.DeletePersonAndRelated(context.Background(), 3)
	assert.NoError(t, err)

	assert.Equal(t, int64(4), tableCount(t, db, &models.Person{}))
	assert.Equal(t, int64(5), tableCount(t, db, &models.PersonPhoneNumber{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Patient{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.Doctor{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.Appointment{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.MedicalRecord{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.Prescription{}))
	assert.Equal(t, int64(1), tableCount(t, db, &models.Billing{}))

	// The surviving appointment is the one neither keyed to patient 3 nor
	// doctor 3.
	var remaining models.Appointment
	assert.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, uint(2), remaining.AppointmentID)
}

func TestDeletePersonNotFoundLeavesTablesUnchanged(t *testing.T) {
	db := newTestDB(t)
	seedTestDB(t, db)
	repo := NewPersonRepository(db, nil)

	err := repo.DeletePersonAndRelated(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	assert.Equal(t, int64(5), tableCount(t, db, &models.Person{}))
	assert.Equal(t, int64(6), tableCount(t, db, &models.PersonPhoneNumber{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Patient{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Doctor{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Appointment{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.MedicalRecord{}))
	assert.Equal(t, int64(2), tableCount(t, db, &models.Prescription{}))
	assert.Equal(t, int64(3), tableCount(t, db, &models.Billing{}))
}
