package availability

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Window maps to the availability_window table. A window declares when a
// doctor may be booked at a hospital and at what fee. Windows are created by
// administration and are read-only to booking: hosting an appointment does
// not consume or mutate the window.
type Window struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	DoctorID        uuid.UUID       `db:"doctor_id" json:"doctor_id"`
	HospitalID      uuid.UUID       `db:"hospital_id" json:"hospital_id"`
	Date            civil.Date      `db:"visit_date" json:"date"`
	StartTime       civil.Clock     `db:"start_time" json:"start_time"`
	EndTime         civil.Clock     `db:"end_time" json:"end_time"`
	ConsultationFee decimal.Decimal `db:"consultation_fee" json:"consultation_fee"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// Contains reports whether the window hosts the given date and time. The
// interval is half-open: the start minute is bookable, the end minute is not.
func (w *Window) Contains(date civil.Date, at civil.Clock) bool {
	if w.Date != date {
		return false
	}
	return !at.Before(w.StartTime) && at.Before(w.EndTime)
}
