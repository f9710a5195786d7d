package models

import (
	"fmt"
)

// Person model. Root identity entity: a person may be a patient, a doctor,
// both, or neither.
type Person struct {
	PersonID     uint                `gorm:"primaryKey;autoIncrement;column:person_id" json:"person_id"`
	FirstName    string              `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string              `gorm:"column:last_name;not null;index" json:"last_name"`
	Email        string              `gorm:"column:email" json:"email"`
	PhoneNumber  string              `gorm:"column:phone_number" json:"phone_number"`
	PhoneNumbers []PersonPhoneNumber `gorm:"foreignKey:PersonID;references:PersonID" json:"-"`
}

func (Person) TableName() string {
	return "person"
}

// FullName renders the display name as "first last".
func (p Person) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// PersonPhoneNumber model. A person may carry several numbers; the
// (person_id, phone_number) pair is unique.
type PersonPhoneNumber struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PersonID    uint   `gorm:"column:person_id;not null;index;uniqueIndex:idx_person_phone" json:"person_id"`
	PhoneNumber string `gorm:"column:phone_number;not null;uniqueIndex:idx_person_phone" json:"phone_number"`
	Person      Person `gorm:"foreignKey:PersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PersonPhoneNumber) TableName() string {
	return "person_phone_number"
}

// Patient model. One-to-one extension of Person keyed by the person's own id
// (foreign key as primary key), not an independent entity.
type Patient struct {
	PersonID    uint   `gorm:"primaryKey;column:person_id" json:"person_id"`
	Age         int    `gorm:"column:age" json:"age"`
	DateOfBirth string `gorm:"column:date_of_birth" json:"date_of_birth"`
	Street      string `gorm:"column:street" json:"street"`
	City        string `gorm:"column:city;index" json:"city"`
	PostalCode  string `gorm:"column:postal_code" json:"postal_code"`
	Person      Person `gorm:"foreignKey:PersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Doctor model. Same foreign-key-as-primary-key extension as Patient.
type Doctor struct {
	PersonID       uint   `gorm:"primaryKey;column:person_id" json:"person_id"`
	Specialization string `gorm:"column:specialization" json:"specialization"`
	Person         Person `gorm:"foreignKey:PersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Appointment model
type Appointment struct {
	AppointmentID   uint    `gorm:"primaryKey;autoIncrement;column:appointment_id" json:"appointment_id"`
	AppointmentDate string  `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	Reason          string  `gorm:"column:reason" json:"reason"`
	PatientID       uint    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID        uint    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Patient         Patient `gorm:"foreignKey:PatientID;references:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor          Doctor  `gorm:"foreignKey:DoctorID;references:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// MedicalRecord model
type MedicalRecord struct {
	RecordID      uint        `gorm:"primaryKey;autoIncrement;column:record_id" json:"record_id"`
	RecordDate    string      `gorm:"column:record_date;not null" json:"record_date"`
	Treatment     string      `gorm:"column:treatment" json:"treatment"`
	Diagnosis     string      `gorm:"column:diagnosis" json:"diagnosis"`
	PatientID     uint        `gorm:"column:patient_id;not null;index" json:"patient_id"`
	AppointmentID uint        `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	Patient       Patient     `gorm:"foreignKey:PatientID;references:PersonID;constraint:OnDelete:CASCADE" json:"-"`
	Appointment   Appointment `gorm:"foreignKey:AppointmentID;references:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MedicalRecord) TableName() string {
	return "medical_record"
}

// Prescription model
type Prescription struct {
	PrescriptionID uint          `gorm:"primaryKey;autoIncrement;column:prescription_id" json:"prescription_id"`
	MedicineName   string        `gorm:"column:medicine_name;not null" json:"medicine_name"`
	Dosage         string        `gorm:"column:dosage" json:"dosage"`
	Duration       string        `gorm:"column:duration" json:"duration"`
	RecordID       uint          `gorm:"column:record_id;not null;index" json:"record_id"`
	Record         MedicalRecord `gorm:"foreignKey:RecordID;references:RecordID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// Billing model
type Billing struct {
	BillID        uint        `gorm:"primaryKey;autoIncrement;column:bill_id" json:"bill_id"`
	Amount        float64     `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	PaymentStatus string      `gorm:"column:payment_status" json:"payment_status"`
	AppointmentID uint        `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"foreignKey:AppointmentID;references:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Billing) TableName() string {
	return "billing"
}
