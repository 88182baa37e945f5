package availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/money"
)

// Service validates and stores declared availability windows and answers
// window lookups for booking validation.
type Service struct {
	windows Repository
}

func NewService(windows Repository) *Service {
	return &Service{windows: windows}
}

func (s *Service) CreateWindow(ctx context.Context, w *Window) error {
	if w.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if w.HospitalID == uuid.Nil {
		return fmt.Errorf("hospital_id is required")
	}

	date, err := civil.ParseDate(w.Date.String())
	if err != nil {
		return err
	}
	start, err := civil.ParseClock(w.StartTime.String())
	if err != nil {
		return err
	}
	end, err := civil.ParseClock(w.EndTime.String())
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return fmt.Errorf("start_time %s must be before end_time %s", start, end)
	}
	if !money.Valid(w.ConsultationFee) {
		return fmt.Errorf("consultation_fee must be non-negative with at most 2 decimal places")
	}

	w.Date, w.StartTime, w.EndTime = date, start, end
	return s.windows.Create(ctx, w)
}

func (s *Service) GetWindow(ctx context.Context, id uuid.UUID) (*Window, error) {
	return s.windows.GetByID(ctx, id)
}

func (s *Service) DeleteWindow(ctx context.Context, id uuid.UUID) error {
	return s.windows.Delete(ctx, id)
}

func (s *Service) ListWindowsByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Window, int, error) {
	return s.windows.ListByDoctor(ctx, doctorID, limit, offset)
}

// FindWindow resolves the declared window hosting the requested slot, if any.
func (s *Service) FindWindow(ctx context.Context, doctorID, hospitalID uuid.UUID, date civil.Date, at civil.Clock) (*Window, error) {
	return s.windows.FindWindow(ctx, doctorID, hospitalID, date, at)
}
