package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medibook/medibook/internal/platform/civil"
)

// ErrAppointmentNotFound is returned by GetByID when no ledger entry has the
// given id. Storage failures come back as their own errors.
var ErrAppointmentNotFound = errors.New("appointment not found")

// Ledger is the durable, append-mostly record of committed appointments and
// the source of truth for aggregation. Implementations must make Append
// atomic per (doctor, date, time) key: of two racing appends for the same
// key exactly one succeeds and the other returns ErrSlotAlreadyBooked.
// Appointments are never updated or deleted.
type Ledger interface {
	Append(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ExistsAt(ctx context.Context, doctorID uuid.UUID, date civil.Date, at civil.Clock) (bool, error)

	// ListByHospital returns every appointment at the hospital, unpaginated:
	// the aggregation engine consumes the full set in one linear pass.
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Appointment, error)

	// ListByDoctor returns the doctor's appointments, optionally restricted
	// to one hospital.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, hospitalID *uuid.UUID) ([]*Appointment, error)

	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	List(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
}
