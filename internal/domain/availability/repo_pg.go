package availability

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibook/medibook/internal/platform/civil"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const windowCols = `id, doctor_id, hospital_id,
	to_char(visit_date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	consultation_fee, created_at`

func scanWindow(row pgx.Row) (*Window, error) {
	var w Window
	var date, start, end string
	err := row.Scan(&w.ID, &w.DoctorID, &w.HospitalID, &date, &start, &end,
		&w.ConsultationFee, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	w.Date = civil.Date(date)
	w.StartTime = civil.Clock(start)
	w.EndTime = civil.Clock(end)
	return &w, nil
}

func (r *repoPG) Create(ctx context.Context, w *Window) error {
	w.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO availability_window (id, doctor_id, hospital_id, visit_date, start_time, end_time, consultation_fee)
		VALUES ($1, $2, $3, $4::date, $5::time, $6::time, $7)`,
		w.ID, w.DoctorID, w.HospitalID, w.Date.String(), w.StartTime.String(), w.EndTime.String(), w.ConsultationFee)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Window, error) {
	w, err := scanWindow(r.pool.QueryRow(ctx, `SELECT `+windowCols+` FROM availability_window WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	return w, err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM availability_window WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Window, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM availability_window WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+windowCols+` FROM availability_window
		WHERE doctor_id = $1 ORDER BY visit_date, start_time LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Window
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	return items, total, rows.Err()
}

// FindWindow is first-match by start time: when overlapping windows exist for
// the same doctor, the earliest-starting one is returned.
func (r *repoPG) FindWindow(ctx context.Context, doctorID, hospitalID uuid.UUID, date civil.Date, at civil.Clock) (*Window, error) {
	w, err := scanWindow(r.pool.QueryRow(ctx, `
		SELECT `+windowCols+` FROM availability_window
		WHERE doctor_id = $1 AND hospital_id = $2 AND visit_date = $3::date
		  AND start_time <= $4::time AND end_time > $4::time
		ORDER BY start_time
		LIMIT 1`,
		doctorID, hospitalID, date.String(), at.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	return w, err
}
