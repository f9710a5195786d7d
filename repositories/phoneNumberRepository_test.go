package repositories

import (
	"ClinicRecords/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPhoneNumber(t *testing.T) {
	db := newTestDB(t)
	seedTestDB(t, db)
	repo := NewPhoneNumberRepository(db, nil)
	ctx := context.Background()

	number := models.PersonPhoneNumber{PersonID: 2, PhoneNumber: "647-555-0102"}
	assert.NoError(t, repo.Add(ctx, &number))

	numbers, err := repo.ListByPerson(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, numbers, 2)
}

func TestAddPhoneNumberRejectsDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	seedTestDB(t, db)
	repo := NewPhoneNumberRepository(db, nil)
	ctx := context.Background()

	// (1, 416-555-0101) is part of the sample dataset.
	duplicate := models.PersonPhoneNumber{PersonID: 1, PhoneNumber: "416-555-0101"}
	err := repo.Add(ctx, &duplicate)
	assert.ErrorIs(t, err, ErrDuplicatePhoneNumber)

	// The same number on a different person is a distinct pair.
	other := models.PersonPhoneNumber{PersonID: 2, PhoneNumber: "416-555-0101"}
	assert.NoError(t, repo.Add(ctx, &other))
}

func TestAddPhoneNumberUnknownPerson(t *testing.T) {
	db := newTestDB(t)
	repo := NewPhoneNumberRepository(db, nil)

	number := models.PersonPhoneNumber{PersonID: 42, PhoneNumber: "416-555-0400"}
	err := repo.Add(context.Background(), &number)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}
