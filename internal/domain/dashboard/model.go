package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Snapshot is the admin dashboard payload: the whole network rolled up at
// read time, hospital by hospital. Nothing in it is persisted; a fresh read
// recomputes everything from the ledger.
type Snapshot struct {
	Hospitals []*HospitalReport `json:"hospitals"`
	Patients  []*PatientSummary `json:"patients"`

	TotalSystemEarnings   decimal.Decimal `json:"total_system_earnings"`
	TotalDoctorEarnings   decimal.Decimal `json:"total_doctor_earnings"`
	TotalHospitalEarnings decimal.Decimal `json:"total_hospital_earnings"`

	GeneratedAt time.Time `json:"generated_at"`
}

type HospitalReport struct {
	HospitalID   uuid.UUID `json:"hospital_id"`
	HospitalName string    `json:"hospital_name"`

	TotalCollected   decimal.Decimal `json:"total_collected"`
	DoctorEarnings   decimal.Decimal `json:"doctor_earnings"`
	HospitalEarnings decimal.Decimal `json:"hospital_earnings"`

	Doctors []*DoctorReport `json:"doctors"`
}

type DoctorReport struct {
	DoctorID   uuid.UUID `json:"doctor_id"`
	DoctorName string    `json:"doctor_name"`

	AppointmentCount int             `json:"appointment_count"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`

	Appointments []*AppointmentRow `json:"appointments"`
}

// AppointmentRow is one ledger entry flattened for display, with the patient
// name resolved from the directory.
type AppointmentRow struct {
	ID            uuid.UUID       `json:"id"`
	PatientID     uuid.UUID       `json:"patient_id"`
	PatientName   string          `json:"patient_name"`
	Date          civil.Date      `json:"date"`
	Time          civil.Clock     `json:"time"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	DoctorShare   decimal.Decimal `json:"doctor_share"`
	HospitalShare decimal.Decimal `json:"hospital_share"`
}

type PatientSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	UniqueID string    `json:"unique_id"`
}
