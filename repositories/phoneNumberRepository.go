package repositories

import (
	"ClinicRecords/cache"
	"ClinicRecords/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrDuplicatePhoneNumber signals a re-add of an existing (person, number)
// pair.
var ErrDuplicatePhoneNumber = errors.New("phone number already registered for this person")

type PhoneNumberRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPhoneNumberRepository(db *gorm.DB, cache *cache.Cache) *PhoneNumberRepository {
	return &PhoneNumberRepository{db: db, cache: cache}
}

// Add registers an extra phone number for a person. The (person, number)
// pair is unique; the schema carries a matching unique index as backstop.
func (r *PhoneNumberRepository) Add(ctx context.Context, number *models.PersonPhoneNumber) error {
	lockKey := fmt.Sprintf("phone_lock:%d_%s", number.PersonID, number.PhoneNumber)
	return withLock(ctx, lockKey, func() error {
		var person models.Person
		if err := r.db.WithContext(ctx).First(&person, "person_id = ?", number.PersonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPersonNotFound
			}
			return fmt.Errorf("failed to find person: %w", err)
		}

		var existing models.PersonPhoneNumber
		err := r.db.WithContext(ctx).
			Where("person_id = ? AND phone_number = ?", number.PersonID, number.PhoneNumber).
			First(&existing).Error
		if err == nil {
			return ErrDuplicatePhoneNumber
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing phone number: %w", err)
		}

		if err := r.db.WithContext(ctx).Create(number).Error; err != nil {
			return fmt.Errorf("failed to create phone number: %w", err)
		}
		return invalidateQueryCache(ctx, r.cache)
	})
}

func (r *PhoneNumberRepository) ListByPerson(ctx context.Context, personID uint) ([]models.PersonPhoneNumber, error) {
	var numbers []models.PersonPhoneNumber
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Find(&numbers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list phone numbers: %w", err)
	}
	return numbers, nil
}
