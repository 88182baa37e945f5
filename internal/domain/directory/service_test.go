package directory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockHospitalRepo struct {
	hospitals map[uuid.UUID]*Hospital
}

func newMockHospitalRepo() *mockHospitalRepo {
	return &mockHospitalRepo{hospitals: make(map[uuid.UUID]*Hospital)}
}

func (m *mockHospitalRepo) Create(_ context.Context, h *Hospital) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	h.UpdatedAt = time.Now()
	m.hospitals[h.ID] = h
	return nil
}

func (m *mockHospitalRepo) GetByID(_ context.Context, id uuid.UUID) (*Hospital, error) {
	h, ok := m.hospitals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

func (m *mockHospitalRepo) Update(_ context.Context, h *Hospital) error {
	m.hospitals[h.ID] = h
	return nil
}

func (m *mockHospitalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.hospitals, id)
	return nil
}

func (m *mockHospitalRepo) List(_ context.Context, limit, offset int) ([]*Hospital, int, error) {
	var result []*Hospital
	for _, h := range m.hospitals {
		result = append(result, h)
	}
	return result, len(result), nil
}

type mockDepartmentRepo struct {
	departments map[uuid.UUID]*Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[uuid.UUID]*Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, d *Department) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	m.departments[d.ID] = d
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id uuid.UUID) (*Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) ListByHospital(_ context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Department, int, error) {
	var result []*Department
	for _, d := range m.departments {
		if d.HospitalID == hospitalID {
			result = append(result, d)
		}
	}
	return result, len(result), nil
}

type mockDoctorRepo struct {
	doctors map[uuid.UUID]*DoctorProfile
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*DoctorProfile)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *DoctorProfile) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*DoctorProfile, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *DoctorProfile) error {
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, limit, offset int) ([]*DoctorProfile, int, error) {
	var result []*DoctorProfile
	for _, d := range m.doctors {
		result = append(result, d)
	}
	return result, len(result), nil
}

type mockPatientRepo struct {
	patients map[uuid.UUID]*PatientProfile
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*PatientProfile)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *PatientProfile) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*PatientProfile, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *PatientProfile) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*PatientProfile, int, error) {
	var result []*PatientProfile
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func newTestService() *Service {
	return NewService(newMockHospitalRepo(), newMockDepartmentRepo(), newMockDoctorRepo(), newMockPatientRepo())
}

// -- Tests --

func TestCreateHospital(t *testing.T) {
	svc := newTestService()
	h := &Hospital{Name: "City General", Location: "Springfield"}
	if err := svc.CreateHospital(context.Background(), h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}

	got, err := svc.GetHospital(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "City General" {
		t.Errorf("name = %s", got.Name)
	}
}

func TestCreateHospital_RequiresName(t *testing.T) {
	svc := newTestService()
	if err := svc.CreateHospital(context.Background(), &Hospital{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestCreateDepartment_RequiresExistingHospital(t *testing.T) {
	svc := newTestService()
	d := &Department{Name: "Cardiology", HospitalID: uuid.New()}
	if err := svc.CreateDepartment(context.Background(), d); err == nil {
		t.Error("expected error for unknown hospital")
	}

	h := &Hospital{Name: "City General"}
	svc.CreateHospital(context.Background(), h)
	d.HospitalID = h.ID
	if err := svc.CreateDepartment(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateDoctor_RejectsNegativeExperience(t *testing.T) {
	svc := newTestService()
	d := &DoctorProfile{Name: "Dr. Gupta", ExperienceYears: -1}
	if err := svc.CreateDoctor(context.Background(), d); err == nil {
		t.Error("expected error for negative experience")
	}
}

func TestCreatePatient_ValidatesDateOfBirth(t *testing.T) {
	svc := newTestService()
	p := &PatientProfile{Name: "Asha", UniqueID: "P-1001", DateOfBirth: "31-01-1990"}
	if err := svc.CreatePatient(context.Background(), p); err == nil {
		t.Error("expected error for malformed date of birth")
	}

	p.DateOfBirth = "1990-01-31"
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreatePatient_RequiresUniqueID(t *testing.T) {
	svc := newTestService()
	p := &PatientProfile{Name: "Asha"}
	if err := svc.CreatePatient(context.Background(), p); err == nil {
		t.Error("expected error for missing unique_id")
	}
}
