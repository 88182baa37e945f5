package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/domain/booking"
	"github.com/medibook/medibook/internal/domain/directory"
)

// -- Mocks --

type mockDirectory struct {
	hospitals []*directory.Hospital
	doctors   map[uuid.UUID]*directory.DoctorProfile
	patients  map[uuid.UUID]*directory.PatientProfile
}

func (m *mockDirectory) ListHospitals(_ context.Context, limit, offset int) ([]*directory.Hospital, int, error) {
	if offset >= len(m.hospitals) {
		return nil, len(m.hospitals), nil
	}
	end := offset + limit
	if end > len(m.hospitals) {
		end = len(m.hospitals)
	}
	return m.hospitals[offset:end], len(m.hospitals), nil
}

func (m *mockDirectory) GetDoctor(_ context.Context, id uuid.UUID) (*directory.DoctorProfile, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockDirectory) GetPatient(_ context.Context, id uuid.UUID) (*directory.PatientProfile, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockDirectory) ListPatients(_ context.Context, limit, offset int) ([]*directory.PatientProfile, int, error) {
	var all []*directory.PatientProfile
	for _, p := range m.patients {
		all = append(all, p)
	}
	if offset >= len(all) {
		return nil, len(all), nil
	}
	return all, len(all), nil
}

type mockSource struct {
	byHospital map[uuid.UUID][]*booking.Appointment
}

func (m *mockSource) ListByHospital(_ context.Context, hospitalID uuid.UUID) ([]*booking.Appointment, error) {
	return m.byHospital[hospitalID], nil
}

func amt(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func settled(patientID, doctorID, hospitalID uuid.UUID, amount string) *booking.Appointment {
	paid := amt(amount)
	doctor, hospital := booking.ComputeShares(paid)
	return &booking.Appointment{
		ID:            uuid.New(),
		PatientID:     patientID,
		DoctorID:      doctorID,
		HospitalID:    hospitalID,
		Date:          "2024-06-01",
		Time:          "10:00",
		AmountPaid:    paid,
		DoctorShare:   decimal.NewNullDecimal(doctor),
		HospitalShare: decimal.NewNullDecimal(hospital),
	}
}

// -- Tests --

func TestBuildSnapshot(t *testing.T) {
	hospID := uuid.New()
	doctorA, doctorB := uuid.New(), uuid.New()
	patientID := uuid.New()

	dir := &mockDirectory{
		hospitals: []*directory.Hospital{{ID: hospID, Name: "City General"}},
		doctors: map[uuid.UUID]*directory.DoctorProfile{
			doctorA: {ID: doctorA, Name: "Dr. Anand"},
			doctorB: {ID: doctorB, Name: "Dr. Bose"},
		},
		patients: map[uuid.UUID]*directory.PatientProfile{
			patientID: {ID: patientID, Name: "Asha Rao", UniqueID: "P-001"},
		},
	}
	src := &mockSource{byHospital: map[uuid.UUID][]*booking.Appointment{
		hospID: {
			settled(patientID, doctorA, hospID, "100.00"),
			settled(patientID, doctorA, hospID, "200.00"),
			settled(patientID, doctorA, hospID, "300.00"),
			settled(patientID, doctorB, hospID, "400.00"),
		},
	}}

	snap, err := NewService(dir, src, zerolog.Nop()).BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !snap.TotalSystemEarnings.Equal(amt("1000.00")) {
		t.Errorf("total system earnings = %s, want 1000.00", snap.TotalSystemEarnings)
	}
	if !snap.TotalDoctorEarnings.Equal(amt("600.00")) {
		t.Errorf("total doctor earnings = %s, want 600.00", snap.TotalDoctorEarnings)
	}
	if !snap.TotalHospitalEarnings.Equal(amt("400.00")) {
		t.Errorf("total hospital earnings = %s, want 400.00", snap.TotalHospitalEarnings)
	}

	if len(snap.Hospitals) != 1 {
		t.Fatalf("expected 1 hospital report, got %d", len(snap.Hospitals))
	}
	hosp := snap.Hospitals[0]
	if !hosp.TotalCollected.Equal(amt("1000.00")) || !hosp.DoctorEarnings.Equal(amt("600.00")) || !hosp.HospitalEarnings.Equal(amt("400.00")) {
		t.Errorf("hospital rollup = %s/%s/%s, want 1000.00/600.00/400.00",
			hosp.TotalCollected, hosp.DoctorEarnings, hosp.HospitalEarnings)
	}

	if len(hosp.Doctors) != 2 {
		t.Fatalf("expected 2 doctor reports, got %d", len(hosp.Doctors))
	}
	// Sorted by name, so Dr. Anand first.
	a, b := hosp.Doctors[0], hosp.Doctors[1]
	if a.DoctorName != "Dr. Anand" || a.AppointmentCount != 3 || !a.TotalEarnings.Equal(amt("360.00")) {
		t.Errorf("doctor A report = %s/%d/%s, want Dr. Anand/3/360.00", a.DoctorName, a.AppointmentCount, a.TotalEarnings)
	}
	if b.DoctorName != "Dr. Bose" || b.AppointmentCount != 1 || !b.TotalEarnings.Equal(amt("240.00")) {
		t.Errorf("doctor B report = %s/%d/%s, want Dr. Bose/1/240.00", b.DoctorName, b.AppointmentCount, b.TotalEarnings)
	}
	if a.Appointments[0].PatientName != "Asha Rao" {
		t.Errorf("patient name = %q, want Asha Rao", a.Appointments[0].PatientName)
	}

	if len(snap.Patients) != 1 || snap.Patients[0].UniqueID != "P-001" {
		t.Errorf("patients = %+v, want one entry with unique id P-001", snap.Patients)
	}
}

// Doctor and hospital earnings must always recompose to what was collected.
func TestBuildSnapshot_SharesSumToCollected(t *testing.T) {
	hospID := uuid.New()
	doctorID, patientID := uuid.New(), uuid.New()

	dir := &mockDirectory{
		hospitals: []*directory.Hospital{{ID: hospID, Name: "Lakeside"}},
		doctors:   map[uuid.UUID]*directory.DoctorProfile{doctorID: {ID: doctorID, Name: "Dr. Iyer"}},
		patients:  map[uuid.UUID]*directory.PatientProfile{patientID: {ID: patientID, Name: "Ravi"}},
	}
	src := &mockSource{byHospital: map[uuid.UUID][]*booking.Appointment{
		hospID: {
			settled(patientID, doctorID, hospID, "33.33"),
			settled(patientID, doctorID, hospID, "0.01"),
			settled(patientID, doctorID, hospID, "100.01"),
		},
	}}

	snap, err := NewService(dir, src, zerolog.Nop()).BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := snap.TotalDoctorEarnings.Add(snap.TotalHospitalEarnings)
	if !sum.Equal(snap.TotalSystemEarnings) {
		t.Errorf("doctor %s + hospital %s = %s, want %s",
			snap.TotalDoctorEarnings, snap.TotalHospitalEarnings, sum, snap.TotalSystemEarnings)
	}
}

// Rows written before settlement carry no shares; they count as zero instead
// of failing the whole snapshot.
func TestBuildSnapshot_ToleratesAbsentShares(t *testing.T) {
	hospID := uuid.New()
	doctorID, patientID := uuid.New(), uuid.New()

	bare := &booking.Appointment{
		ID: uuid.New(), PatientID: patientID, DoctorID: doctorID, HospitalID: hospID,
		Date: "2024-06-01", Time: "09:00", AmountPaid: amt("250.00"),
	}
	dir := &mockDirectory{
		hospitals: []*directory.Hospital{{ID: hospID, Name: "Lakeside"}},
		doctors:   map[uuid.UUID]*directory.DoctorProfile{doctorID: {ID: doctorID, Name: "Dr. Iyer"}},
		patients:  map[uuid.UUID]*directory.PatientProfile{},
	}
	src := &mockSource{byHospital: map[uuid.UUID][]*booking.Appointment{hospID: {bare}}}

	snap, err := NewService(dir, src, zerolog.Nop()).BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.TotalSystemEarnings.Equal(amt("250.00")) {
		t.Errorf("total system earnings = %s, want 250.00", snap.TotalSystemEarnings)
	}
	if !snap.TotalDoctorEarnings.IsZero() || !snap.TotalHospitalEarnings.IsZero() {
		t.Errorf("unsettled row leaked earnings: %s/%s", snap.TotalDoctorEarnings, snap.TotalHospitalEarnings)
	}
	// The unknown patient only loses its display name.
	if got := snap.Hospitals[0].Doctors[0].Appointments[0].PatientName; got != "" {
		t.Errorf("patient name = %q, want empty", got)
	}
}

// Two reads over an unchanged ledger must agree figure for figure.
func TestBuildSnapshot_Idempotent(t *testing.T) {
	hospID := uuid.New()
	doctorID, patientID := uuid.New(), uuid.New()

	dir := &mockDirectory{
		hospitals: []*directory.Hospital{{ID: hospID, Name: "Lakeside"}},
		doctors:   map[uuid.UUID]*directory.DoctorProfile{doctorID: {ID: doctorID, Name: "Dr. Iyer"}},
		patients:  map[uuid.UUID]*directory.PatientProfile{patientID: {ID: patientID, Name: "Ravi"}},
	}
	src := &mockSource{byHospital: map[uuid.UUID][]*booking.Appointment{
		hospID: {settled(patientID, doctorID, hospID, "500.00")},
	}}
	svc := NewService(dir, src, zerolog.Nop())

	first, err := svc.BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.BuildSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.TotalSystemEarnings.Equal(second.TotalSystemEarnings) ||
		!first.TotalDoctorEarnings.Equal(second.TotalDoctorEarnings) ||
		!first.TotalHospitalEarnings.Equal(second.TotalHospitalEarnings) {
		t.Error("repeated snapshots over an unchanged ledger diverged")
	}
}
