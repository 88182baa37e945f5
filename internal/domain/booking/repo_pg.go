package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibook/medibook/internal/platform/civil"
)

// pgUniqueViolation is the Postgres error code for a unique constraint hit.
const pgUniqueViolation = "23505"

type ledgerPG struct{ pool *pgxpool.Pool }

// NewLedgerPG returns a Ledger backed by Postgres. The no-double-booking
// invariant is enforced by the storage layer itself via the unique index on
// (doctor_id, visit_date, visit_time), so it holds across process restarts
// and multiple service instances.
func NewLedgerPG(pool *pgxpool.Pool) Ledger { return &ledgerPG{pool: pool} }

const apptCols = `id, patient_id, doctor_id, hospital_id,
	to_char(visit_date, 'YYYY-MM-DD'), to_char(visit_time, 'HH24:MI'),
	amount_paid, doctor_share, hospital_share, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var date, at string
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.HospitalID, &date, &at,
		&a.AmountPaid, &a.DoctorShare, &a.HospitalShare, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Date = civil.Date(date)
	a.Time = civil.Clock(at)
	return &a, nil
}

func (r *ledgerPG) Append(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, doctor_id, hospital_id, visit_date, visit_time,
			amount_paid, doctor_share, hospital_share)
		VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8, $9)`,
		a.ID, a.PatientID, a.DoctorID, a.HospitalID, a.Date.String(), a.Time.String(),
		a.AmountPaid, a.DoctorShare, a.HospitalShare)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrSlotAlreadyBooked
	}
	return err
}

func (r *ledgerPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	return a, err
}

func (r *ledgerPG) ExistsAt(ctx context.Context, doctorID uuid.UUID, date civil.Date, at civil.Clock) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointment
			WHERE doctor_id = $1 AND visit_date = $2::date AND visit_time = $3::time
		)`, doctorID, date.String(), at.String()).Scan(&exists)
	return exists, err
}

func (r *ledgerPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE hospital_id = $1 ORDER BY visit_date, visit_time`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *ledgerPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, hospitalID *uuid.UUID) ([]*Appointment, error) {
	query := `SELECT ` + apptCols + ` FROM appointment WHERE doctor_id = $1`
	args := []interface{}{doctorID}
	if hospitalID != nil {
		query += ` AND hospital_id = $2`
		args = append(args, *hospitalID)
	}
	query += ` ORDER BY visit_date, visit_time`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *ledgerPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE patient_id = $1 ORDER BY visit_date, visit_time LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectAppointments(rows)
	return items, total, err
}

func (r *ledgerPG) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectAppointments(rows)
	return items, total, err
}

func collectAppointments(rows pgx.Rows) ([]*Appointment, error) {
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
