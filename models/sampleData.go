package models

// SamplePersons is the fixed demo dataset inserted by the initialize
// operation. Identifiers are literal so dependent rows can reference them.
func SamplePersons() []Person {
	return []Person{
		{PersonID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@email.com", PhoneNumber: "416-555-0101"},
		{PersonID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@email.com", PhoneNumber: "416-555-0102"},
		{PersonID: 3, FirstName: "Sarah", LastName: "Johnson", Email: "dr.johnson@hospital.com", PhoneNumber: "416-555-0201"},
		{PersonID: 4, FirstName: "Michael", LastName: "Brown", Email: "dr.brown@hospital.com", PhoneNumber: "416-555-0202"},
		{PersonID: 5, FirstName: "Emily", LastName: "Davis", Email: "emily.davis@email.com", PhoneNumber: "416-555-0103"},
	}
}

func SamplePhoneNumbers() []PersonPhoneNumber {
	return []PersonPhoneNumber{
		{PersonID: 1, PhoneNumber: "416-555-0101"},
		{PersonID: 1, PhoneNumber: "647-555-0101"},
		{PersonID: 2, PhoneNumber: "416-555-0102"},
		{PersonID: 3, PhoneNumber: "416-555-0201"},
		{PersonID: 4, PhoneNumber: "416-555-0202"},
		{PersonID: 5, PhoneNumber: "416-555-0103"},
	}
}

func SamplePatients() []Patient {
	return []Patient{
		{PersonID: 1, Age: 35, DateOfBirth: "1989-05-15", Street: "123 Main St", City: "Toronto", PostalCode: "M5V 2T6"},
		{PersonID: 2, Age: 42, DateOfBirth: "1982-08-22", Street: "456 Oak Ave", City: "Toronto", PostalCode: "M4W 1A1"},
		{PersonID: 5, Age: 28, DateOfBirth: "1996-12-10", Street: "789 Elm St", City: "Mississauga", PostalCode: "L5B 3Y4"},
	}
}

func SampleDoctors() []Doctor {
	return []Doctor{
		{PersonID: 3, Specialization: "Cardiology"},
		{PersonID: 4, Specialization: "General Practice"},
	}
}

func SampleAppointments() []Appointment {
	return []Appointment{
		{AppointmentID: 1, AppointmentDate: "2024-11-25", Reason: "Annual Checkup", PatientID: 1, DoctorID: 3},
		{AppointmentID: 2, AppointmentDate: "2024-11-26", Reason: "Follow-up Visit", PatientID: 2, DoctorID: 4},
		{AppointmentID: 3, AppointmentDate: "2024-11-27", Reason: "Consultation", PatientID: 5, DoctorID: 3},
	}
}

func SampleMedicalRecords() []MedicalRecord {
	return []MedicalRecord{
		{RecordID: 1, RecordDate: "2024-11-25", Treatment: "Blood Pressure Medication", Diagnosis: "Hypertension", PatientID: 1, AppointmentID: 1},
		{RecordID: 2, RecordDate: "2024-11-26", Treatment: "Physical Therapy", Diagnosis: "Back Pain", PatientID: 2, AppointmentID: 2},
	}
}

func SamplePrescriptions() []Prescription {
	return []Prescription{
		{PrescriptionID: 1, MedicineName: "Lisinopril", Dosage: "10mg", Duration: "30 days", RecordID: 1},
		{PrescriptionID: 2, MedicineName: "Ibuprofen", Dosage: "400mg", Duration: "14 days", RecordID: 2},
	}
}

func SampleBillings() []Billing {
	return []Billing{
		{BillID: 1, Amount: 150.00, PaymentStatus: "Paid", AppointmentID: 1},
		{BillID: 2, Amount: 200.00, PaymentStatus: "Pending", AppointmentID: 2},
		{BillID: 3, Amount: 175.00, PaymentStatus: "Paid", AppointmentID: 3},
	}
}
