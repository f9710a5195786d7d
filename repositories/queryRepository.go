package repositories

import (
	"ClinicRecords/cache"
	"ClinicRecords/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	QueryCacheExpiry = 10 * time.Minute

	queryCachePattern = "query_cache*"
)

// Row is one flat projected record returned by the search layer.
type Row map[string]interface{}

// tableSpec declares, per selector, which columns the free-text search
// covers, which related rows load eagerly, and how each result projects into
// display fields. One generic routine evaluates every entry; adding a
// selector means adding a row here, not a new code path.
type tableSpec struct {
	searchColumns []string
	join          string
	preloads      []string
	collect       func(tx *gorm.DB) ([]Row, error)
}

var tableSpecs = map[string]tableSpec{
	"person": {
		searchColumns: []string{"person.first_name", "person.last_name", "person.email"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var persons []models.Person
			if err := tx.Find(&persons).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(persons))
			for _, p := range persons {
				rows = append(rows, Row{
					"person_id":    p.PersonID,
					"first_name":   p.FirstName,
					"last_name":    p.LastName,
					"email":        p.Email,
					"phone_number": p.PhoneNumber,
				})
			}
			return rows, nil
		},
	},
	"patient": {
		searchColumns: []string{"person.first_name", "person.last_name", "patient.city"},
		join:          "JOIN person ON person.person_id = patient.person_id",
		preloads:      []string{"Person"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var patients []models.Patient
			if err := tx.Find(&patients).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(patients))
			for _, p := range patients {
				rows = append(rows, Row{
					"person_id":     p.PersonID,
					"name":          p.Person.FullName(),
					"age":           p.Age,
					"date_of_birth": p.DateOfBirth,
					"street":        p.Street,
					"city":          p.City,
					"postal_code":   p.PostalCode,
				})
			}
			return rows, nil
		},
	},
	"doctor": {
		searchColumns: []string{"person.first_name", "person.last_name", "doctor.specialization"},
		join:          "JOIN person ON person.person_id = doctor.person_id",
		preloads:      []string{"Person"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var doctors []models.Doctor
			if err := tx.Find(&doctors).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(doctors))
			for _, d := range doctors {
				rows = append(rows, Row{
					"person_id":      d.PersonID,
					"name":           d.Person.FullName(),
					"specialization": d.Specialization,
				})
			}
			return rows, nil
		},
	},
	"appointment": {
		searchColumns: []string{"appointment.reason"},
		preloads:      []string{"Patient.Person", "Doctor.Person"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var appointments []models.Appointment
			if err := tx.Find(&appointments).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(appointments))
			for _, a := range appointments {
				rows = append(rows, Row{
					"appointment_id":   a.AppointmentID,
					"appointment_date": a.AppointmentDate,
					"reason":           a.Reason,
					"patient":          a.Patient.Person.FullName(),
					"doctor":           a.Doctor.Person.FullName(),
				})
			}
			return rows, nil
		},
	},
	"medical_record": {
		searchColumns: []string{"medical_record.diagnosis", "medical_record.treatment"},
		preloads:      []string{"Patient.Person", "Appointment"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var records []models.MedicalRecord
			if err := tx.Find(&records).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(records))
			for _, m := range records {
				rows = append(rows, Row{
					"record_id":      m.RecordID,
					"record_date":    m.RecordDate,
					"treatment":      m.Treatment,
					"diagnosis":      m.Diagnosis,
					"patient":        m.Patient.Person.FullName(),
					"appointment_id": m.AppointmentID,
				})
			}
			return rows, nil
		},
	},
	"prescription": {
		searchColumns: []string{"prescription.medicine_name"},
		preloads:      []string{"Record"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var prescriptions []models.Prescription
			if err := tx.Find(&prescriptions).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(prescriptions))
			for _, p := range prescriptions {
				rows = append(rows, Row{
					"prescription_id": p.PrescriptionID,
					"medicine_name":   p.MedicineName,
					"dosage":          p.Dosage,
					"duration":        p.Duration,
					"record_id":       p.RecordID,
				})
			}
			return rows, nil
		},
	},
	"billing": {
		searchColumns: []string{"billing.payment_status"},
		preloads:      []string{"Appointment"},
		collect: func(tx *gorm.DB) ([]Row, error) {
			var billings []models.Billing
			if err := tx.Find(&billings).Error; err != nil {
				return nil, err
			}
			rows := make([]Row, 0, len(billings))
			for _, b := range billings {
				rows = append(rows, Row{
					"bill_id":        b.BillID,
					"amount":         fmt.Sprintf("%.2f", b.Amount),
					"payment_status": b.PaymentStatus,
					"appointment_id": b.AppointmentID,
				})
			}
			return rows, nil
		},
	},
}

// TableSelectors lists the known selectors in stable order.
func TableSelectors() []string {
	selectors := make([]string, 0, len(tableSpecs))
	for selector := range tableSpecs {
		selectors = append(selectors, selector)
	}
	sort.Strings(selectors)
	return selectors
}

type QueryRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewQueryRepository(db *gorm.DB, cache *cache.Cache) *QueryRepository {
	return &QueryRepository{db: db, cache: cache}
}

// Search returns the projected rows for the selector, filtered by an
// OR-combined case-insensitive substring match over the selector's search
// columns. An empty search term returns every row; an unknown selector
// returns no rows and no error.
func (r *QueryRepository) Search(ctx context.Context, table, search string) ([]Row, error) {
	spec, ok := tableSpecs[table]
	if !ok {
		return []Row{}, nil
	}

	cacheKey := fmt.Sprintf("query_cache:%s:%s", table, strings.ToLower(search))
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, cacheKey)
		if err == nil {
			var rows []Row
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return rows, nil
			}
		} else if err != redis.Nil {
			log.Printf("Failed to get query result from cache: %v", err)
		}
	}

	tx := r.db.WithContext(ctx)
	for _, preload := range spec.preloads {
		tx = tx.Preload(preload)
	}
	if search != "" {
		if spec.join != "" {
			tx = tx.Joins(spec.join)
		}

		term := "%" + strings.ToLower(search) + "%"
		cond := sq.Or{}
		for _, column := range spec.searchColumns {
			cond = append(cond, sq.Like{fmt.Sprintf("LOWER(%s)", column): term})
		}
		where, args, err := cond.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build search predicate: %w", err)
		}
		tx = tx.Where(where, args...)
	}

	rows, err := spec.collect(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	if r.cache != nil {
		if data, err := json.Marshal(rows); err == nil {
			if err := r.cache.Set(ctx, cacheKey, data, QueryCacheExpiry); err != nil {
				log.Printf("Failed to set query result in cache: %v", err)
			}
		}
	}

	return rows, nil
}

// invalidateQueryCache drops every cached query result. Called after any
// mutation; a no-op when no cache is wired.
func invalidateQueryCache(ctx context.Context, c *cache.Cache) error {
	if c == nil {
		return nil
	}
	return c.DeleteAll(ctx, queryCachePattern)
}
