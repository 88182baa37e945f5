package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Service is the thin CRUD layer over the network directory: hospitals,
// departments, doctor and patient profiles. Booking and dashboard consume it
// for existence checks and display attributes only.
type Service struct {
	hospitals   HospitalRepository
	departments DepartmentRepository
	doctors     DoctorRepository
	patients    PatientRepository
}

func NewService(h HospitalRepository, dep DepartmentRepository, doc DoctorRepository, pat PatientRepository) *Service {
	return &Service{hospitals: h, departments: dep, doctors: doc, patients: pat}
}

// -- Hospital --

func (s *Service) CreateHospital(ctx context.Context, h *Hospital) error {
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.hospitals.Create(ctx, h)
}

func (s *Service) GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	return s.hospitals.GetByID(ctx, id)
}

func (s *Service) UpdateHospital(ctx context.Context, h *Hospital) error {
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.hospitals.Update(ctx, h)
}

func (s *Service) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	return s.hospitals.Delete(ctx, id)
}

func (s *Service) ListHospitals(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	return s.hospitals.List(ctx, limit, offset)
}

// -- Department --

func (s *Service) CreateDepartment(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.HospitalID == uuid.Nil {
		return fmt.Errorf("hospital_id is required")
	}
	if _, err := s.hospitals.GetByID(ctx, d.HospitalID); err != nil {
		return fmt.Errorf("hospital %s: %w", d.HospitalID, err)
	}
	return s.departments.Create(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return s.departments.Delete(ctx, id)
}

func (s *Service) ListDepartmentsByHospital(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Department, int, error) {
	return s.departments.ListByHospital(ctx, hospitalID, limit, offset)
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *DoctorProfile) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.ExperienceYears < 0 {
		return fmt.Errorf("experience_years must not be negative")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*DoctorProfile, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *DoctorProfile) error {
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*DoctorProfile, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

// -- Patient --

func (s *Service) CreatePatient(ctx context.Context, p *PatientProfile) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.UniqueID == "" {
		return fmt.Errorf("unique_id is required")
	}
	if p.DateOfBirth != "" {
		dob, err := civil.ParseDate(p.DateOfBirth.String())
		if err != nil {
			return err
		}
		p.DateOfBirth = dob
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*PatientProfile, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *PatientProfile) error {
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*PatientProfile, int, error) {
	return s.patients.List(ctx, limit, offset)
}
