package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/domain/availability"
	"github.com/medibook/medibook/internal/domain/directory"
	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/money"
)

// Directory is the slice of the directory service booking needs: existence
// checks on the three parties of an appointment. Satisfied by
// *directory.Service.
type Directory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*directory.PatientProfile, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*directory.DoctorProfile, error)
	GetHospital(ctx context.Context, id uuid.UUID) (*directory.Hospital, error)
}

// WindowFinder resolves a declared availability window hosting a requested
// slot. Satisfied by *availability.Service.
type WindowFinder interface {
	FindWindow(ctx context.Context, doctorID, hospitalID uuid.UUID, date civil.Date, at civil.Clock) (*availability.Window, error)
}

// Service runs the booking pipeline: validate the request, check the slot
// against declared availability and the ledger, settle the payment split and
// append the appointment.
type Service struct {
	ledger    Ledger
	directory Directory
	windows   WindowFinder
	log       zerolog.Logger
}

func NewService(ledger Ledger, dir Directory, windows WindowFinder, log zerolog.Logger) *Service {
	return &Service{ledger: ledger, directory: dir, windows: windows, log: log}
}

// Book validates and commits one appointment. On success the returned
// appointment carries the computed doctor and hospital shares. Failures map
// to the package sentinels; anything else is a storage or lookup fault.
func (s *Service) Book(ctx context.Context, req *Request) (*Appointment, error) {
	if req.PatientID == uuid.Nil || req.DoctorID == uuid.Nil || req.HospitalID == uuid.Nil {
		return nil, fmt.Errorf("%w: patient_id, doctor_id and hospital_id are required", ErrUpstreamLookup)
	}

	date, err := civil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}
	at, err := civil.ParseClock(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	if !money.Valid(req.AmountPaid) {
		return nil, ErrInvalidAmount
	}

	// Only a genuinely missing record is an upstream lookup failure. A broken
	// directory (connection fault, timeout) escalates as the storage error it
	// is instead of masquerading as "not found".
	if _, err := s.directory.GetPatient(ctx, req.PatientID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, fmt.Errorf("%w: patient %s", ErrUpstreamLookup, req.PatientID)
		}
		return nil, fmt.Errorf("lookup patient %s: %w", req.PatientID, err)
	}
	if _, err := s.directory.GetDoctor(ctx, req.DoctorID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", ErrUpstreamLookup, req.DoctorID)
		}
		return nil, fmt.Errorf("lookup doctor %s: %w", req.DoctorID, err)
	}
	if _, err := s.directory.GetHospital(ctx, req.HospitalID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, fmt.Errorf("%w: hospital %s", ErrUpstreamLookup, req.HospitalID)
		}
		return nil, fmt.Errorf("lookup hospital %s: %w", req.HospitalID, err)
	}

	if _, err := s.windows.FindWindow(ctx, req.DoctorID, req.HospitalID, date, at); err != nil {
		if errors.Is(err, availability.ErrWindowNotFound) {
			return nil, ErrOutsideAvailability
		}
		return nil, err
	}

	// Early rejection for the common case. The ledger's atomic append is
	// still the authority when two bookings race past this check.
	taken, err := s.ledger.ExistsAt(ctx, req.DoctorID, date, at)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotAlreadyBooked
	}

	doctorShare, hospitalShare := ComputeShares(req.AmountPaid)
	appt := &Appointment{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		HospitalID:    req.HospitalID,
		Date:          date,
		Time:          at,
		AmountPaid:    req.AmountPaid,
		DoctorShare:   decimal.NewNullDecimal(doctorShare),
		HospitalShare: decimal.NewNullDecimal(hospitalShare),
	}
	if err := s.ledger.Append(ctx, appt); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("appointment_id", appt.ID.String()).
		Str("doctor_id", appt.DoctorID.String()).
		Str("date", date.String()).
		Str("time", at.String()).
		Str("amount_paid", req.AmountPaid.String()).
		Msg("appointment booked")
	return appt, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.ledger.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.ledger.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, hospitalID *uuid.UUID) ([]*Appointment, error) {
	return s.ledger.ListByDoctor(ctx, doctorID, hospitalID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.ledger.List(ctx, limit, offset)
}
