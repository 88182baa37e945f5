package availability

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medibook/medibook/internal/platform/civil"
)

// ErrWindowNotFound is returned by FindWindow when no declared window hosts
// the requested date and time.
var ErrWindowNotFound = errors.New("no availability window matches")

type Repository interface {
	Create(ctx context.Context, w *Window) error
	GetByID(ctx context.Context, id uuid.UUID) (*Window, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Window, int, error)

	// FindWindow returns the window for the doctor at the hospital whose date
	// matches and whose [start, end) interval contains the requested time.
	// When overlapping windows exist the one with the earliest start time
	// wins; the choice must be deterministic. Returns ErrWindowNotFound when
	// nothing matches.
	FindWindow(ctx context.Context, doctorID, hospitalID uuid.UUID, date civil.Date, at civil.Clock) (*Window, error)
}
