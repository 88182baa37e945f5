package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Appointment maps to the appointment table. Rows are the settled, immutable
// record of a booking: the shares are computed once at booking time and are
// never recomputed or rewritten afterwards.
type Appointment struct {
	ID            uuid.UUID           `db:"id" json:"id"`
	PatientID     uuid.UUID           `db:"patient_id" json:"patient_id"`
	DoctorID      uuid.UUID           `db:"doctor_id" json:"doctor_id"`
	HospitalID    uuid.UUID           `db:"hospital_id" json:"hospital_id"`
	Date          civil.Date          `db:"visit_date" json:"date"`
	Time          civil.Clock         `db:"visit_time" json:"time"`
	AmountPaid    decimal.Decimal     `db:"amount_paid" json:"amount_paid"`
	DoctorShare   decimal.NullDecimal `db:"doctor_share" json:"doctor_share"`
	HospitalShare decimal.NullDecimal `db:"hospital_share" json:"hospital_share"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

// Request is an incoming booking. The amount is treated as already settled by
// the payment layer; this service only splits and records it.
type Request struct {
	PatientID  uuid.UUID       `json:"patient_id"`
	DoctorID   uuid.UUID       `json:"doctor_id"`
	HospitalID uuid.UUID       `json:"hospital_id"`
	Date       string          `json:"date"`
	Time       string          `json:"time"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}
