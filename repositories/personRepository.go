package repositories

import (
	"ClinicRecords/cache"
	"ClinicRecords/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrPersonNotFound signals a lookup of a person id that does not exist,
// distinct from storage faults.
var ErrPersonNotFound = errors.New("person not found")

type PersonRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPersonRepository(db *gorm.DB, cache *cache.Cache) *PersonRepository {
	return &PersonRepository{db: db, cache: cache}
}

// Create inserts a new person with an auto-assigned id. A supplied phone
// number is stored on the person row only, never as a person_phone_number
// entry.
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	lockKey := fmt.Sprintf("person_lock:%s_%s", person.FirstName, person.LastName)
	return withLock(ctx, lockKey, func() error {
		if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
			return fmt.Errorf("failed to create person: %w", err)
		}
		return invalidateQueryCache(ctx, r.cache)
	})
}

func (r *PersonRepository) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).First(&person, "person_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

// AnyExists reports whether at least one person row is present. Drives the
// "initialized" flag of the index endpoint.
func (r *PersonRepository) AnyExists(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Person{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count persons: %w", err)
	}
	return count > 0, nil
}

// DeletePersonAndRelated removes a person together with every row that
// transitively depends on it. The dependency graph is rooted at the person
// via the patient/doctor extensions, so deletes run in a fixed order,
// dependents first, inside one transaction: billing, prescription,
// medical record, appointment, doctor, patient, phone numbers, person.
func (r *PersonRepository) DeletePersonAndRelated(ctx context.Context, id uint) error {
	lockKey := fmt.Sprintf("person_lock:%d", id)
	return withLock(ctx, lockKey, func() error {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var person models.Person
			if err := tx.First(&person, "person_id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPersonNotFound
				}
				return fmt.Errorf("failed to find person: %w", err)
			}

			// Appointments hang off the person both as patient and as doctor.
			var appointmentIDs []uint
			if err := tx.Model(&models.Appointment{}).
				Where("patient_id = ? OR doctor_id = ?", id, id).
				Pluck("appointment_id", &appointmentIDs).Error; err != nil {
				return fmt.Errorf("failed to collect appointments: %w", err)
			}

			var recordIDs []uint
			if err := tx.Model(&models.MedicalRecord{}).
				Where("patient_id = ? OR appointment_id IN ?", id, appointmentIDs).
				Pluck("record_id", &recordIDs).Error; err != nil {
				return fmt.Errorf("failed to collect medical records: %w", err)
			}

			if err := tx.Where("appointment_id IN ?", appointmentIDs).Delete(&models.Billing{}).Error; err != nil {
				return fmt.Errorf("failed to delete billings: %w", err)
			}
			if err := tx.Where("record_id IN ?", recordIDs).Delete(&models.Prescription{}).Error; err != nil {
				return fmt.Errorf("failed to delete prescriptions: %w", err)
			}
			if err := tx.Where("record_id IN ?", recordIDs).Delete(&models.MedicalRecord{}).Error; err != nil {
				return fmt.Errorf("failed to delete medical records: %w", err)
			}
			if err := tx.Where("appointment_id IN ?", appointmentIDs).Delete(&models.Appointment{}).Error; err != nil {
				return fmt.Errorf("failed to delete appointments: %w", err)
			}
			if err := tx.Where("person_id = ?", id).Delete(&models.Doctor{}).Error; err != nil {
				return fmt.Errorf("failed to delete doctor: %w", err)
			}
			if err := tx.Where("person_id = ?", id).Delete(&models.Patient{}).Error; err != nil {
				return fmt.Errorf("failed to delete patient: %w", err)
			}
			if err := tx.Where("person_id = ?", id).Delete(&models.PersonPhoneNumber{}).Error; err != nil {
				return fmt.Errorf("failed to delete phone numbers: %w", err)
			}
			if err := tx.Delete(&models.Person{}, "person_id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete person: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return invalidateQueryCache(ctx, r.cache)
	})
}
