package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Hospital maps to the hospital table.
type Hospital struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Department maps to the department table.
type Department struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	HospitalID uuid.UUID `db:"hospital_id" json:"hospital_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// DoctorProfile maps to the doctor_profile table.
type DoctorProfile struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Qualifications  string    `db:"qualifications" json:"qualifications"`
	Specializations string    `db:"specializations" json:"specializations"` // comma-separated
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// PatientProfile maps to the patient_profile table.
type PatientProfile struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Gender      string     `db:"gender" json:"gender"`
	DateOfBirth civil.Date `db:"date_of_birth" json:"date_of_birth"`
	UniqueID    string     `db:"unique_id" json:"unique_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
