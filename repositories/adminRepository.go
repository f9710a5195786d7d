package repositories

import (
	"ClinicRecords/cache"
	"ClinicRecords/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAdminRepository(db *gorm.DB, cache *cache.Cache) *AdminRepository {
	return &AdminRepository{db: db, cache: cache}
}

// Initialize resets the store to the fixed sample dataset: every table is
// emptied in dependency order, then the literal demo rows are inserted,
// all inside one transaction so a mid-sequence failure leaves prior state.
func (r *AdminRepository) Initialize(ctx context.Context) error {
	return withLock(ctx, "admin_lock:initialize", func() error {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := wipeTables(tx); err != nil {
				return err
			}

			persons := models.SamplePersons()
			if err := tx.Create(&persons).Error; err != nil {
				return fmt.Errorf("failed to seed persons: %w", err)
			}
			phoneNumbers := models.SamplePhoneNumbers()
			if err := tx.Create(&phoneNumbers).Error; err != nil {
				return fmt.Errorf("failed to seed phone numbers: %w", err)
			}
			patients := models.SamplePatients()
			if err := tx.Create(&patients).Error; err != nil {
				return fmt.Errorf("failed to seed patients: %w", err)
			}
			doctors := models.SampleDoctors()
			if err := tx.Create(&doctors).Error; err != nil {
				return fmt.Errorf("failed to seed doctors: %w", err)
			}
			appointments := models.SampleAppointments()
			if err := tx.Create(&appointments).Error; err != nil {
				return fmt.Errorf("failed to seed appointments: %w", err)
			}
			records := models.SampleMedicalRecords()
			if err := tx.Create(&records).Error; err != nil {
				return fmt.Errorf("failed to seed medical records: %w", err)
			}
			prescriptions := models.SamplePrescriptions()
			if err := tx.Create(&prescriptions).Error; err != nil {
				return fmt.Errorf("failed to seed prescriptions: %w", err)
			}
			billings := models.SampleBillings()
			if err := tx.Create(&billings).Error; err != nil {
				return fmt.Errorf("failed to seed billings: %w", err)
			}

			return resetSequences(tx)
		})
		if err != nil {
			return err
		}
		return invalidateQueryCache(ctx, r.cache)
	})
}

// Wipe deletes every row from every table in dependency order inside one
// transaction.
func (r *AdminRepository) Wipe(ctx context.Context) error {
	return withLock(ctx, "admin_lock:wipe", func() error {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return wipeTables(tx)
		})
		if err != nil {
			return err
		}
		return invalidateQueryCache(ctx, r.cache)
	})
}

// wipeTables empties every table, dependents before parents, so the deletes
// never trip a foreign key regardless of engine constraint ordering.
func wipeTables(tx *gorm.DB) error {
	tables := []interface{}{
		&models.Billing{},
		&models.Prescription{},
		&models.MedicalRecord{},
		&models.Appointment{},
		&models.Doctor{},
		&models.Patient{},
		&models.PersonPhoneNumber{},
		&models.Person{},
	}
	for _, table := range tables {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to wipe table: %w", err)
		}
	}
	return nil
}

// resetSequences realigns the id sequences after seeding rows with literal
// ids, so later inserts do not collide with the sample data. Postgres only;
// SQLite derives the next id from the table itself.
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	sequences := []struct {
		table  string
		column string
	}{
		{"person", "person_id"},
		{"person_phone_number", "id"},
		{"appointment", "appointment_id"},
		{"medical_record", "record_id"},
		{"prescription", "prescription_id"},
		{"billing", "bill_id"},
	}
	for _, seq := range sequences {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 1))",
			seq.table, seq.column, seq.column, seq.table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset sequence for %s: %w", seq.table, err)
		}
	}
	return nil
}
