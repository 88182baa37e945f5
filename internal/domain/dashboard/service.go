package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/domain/booking"
	"github.com/medibook/medibook/internal/domain/directory"
)

// listPageSize bounds each directory page while the builder walks the full
// hospital and patient sets.
const listPageSize = 100

// Directory is the slice of the directory service the dashboard reads.
// Satisfied by *directory.Service.
type Directory interface {
	ListHospitals(ctx context.Context, limit, offset int) ([]*directory.Hospital, int, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*directory.DoctorProfile, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*directory.PatientProfile, error)
	ListPatients(ctx context.Context, limit, offset int) ([]*directory.PatientProfile, int, error)
}

// AppointmentSource is the ledger read the dashboard needs. Satisfied by
// booking.Ledger.
type AppointmentSource interface {
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*booking.Appointment, error)
}

// Service builds read-only dashboard snapshots. It never writes, so repeated
// reads over an unchanged ledger return identical figures.
type Service struct {
	directory Directory
	ledger    AppointmentSource
	log       zerolog.Logger
}

func NewService(dir Directory, ledger AppointmentSource, log zerolog.Logger) *Service {
	return &Service{directory: dir, ledger: ledger, log: log}
}

// BuildSnapshot walks every hospital, groups its ledger entries per doctor
// and rolls the earnings up to network totals. Ledger rows with absent shares
// count as zero rather than poisoning the totals.
func (s *Service) BuildSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Hospitals:             []*HospitalReport{},
		Patients:              []*PatientSummary{},
		TotalSystemEarnings:   decimal.Zero,
		TotalDoctorEarnings:   decimal.Zero,
		TotalHospitalEarnings: decimal.Zero,
		GeneratedAt:           time.Now().UTC(),
	}

	hospitals, err := s.allHospitals(ctx)
	if err != nil {
		return nil, err
	}
	patientNames := make(map[uuid.UUID]string)

	for _, hosp := range hospitals {
		report, err := s.buildHospitalReport(ctx, hosp, patientNames)
		if err != nil {
			return nil, err
		}
		snap.Hospitals = append(snap.Hospitals, report)
		snap.TotalSystemEarnings = snap.TotalSystemEarnings.Add(report.TotalCollected)
		snap.TotalDoctorEarnings = snap.TotalDoctorEarnings.Add(report.DoctorEarnings)
		snap.TotalHospitalEarnings = snap.TotalHospitalEarnings.Add(report.HospitalEarnings)
	}

	patients, err := s.allPatients(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range patients {
		snap.Patients = append(snap.Patients, &PatientSummary{ID: p.ID, Name: p.Name, UniqueID: p.UniqueID})
	}
	return snap, nil
}

func (s *Service) buildHospitalReport(ctx context.Context, hosp *directory.Hospital, patientNames map[uuid.UUID]string) (*HospitalReport, error) {
	report := &HospitalReport{
		HospitalID:       hosp.ID,
		HospitalName:     hosp.Name,
		TotalCollected:   decimal.Zero,
		DoctorEarnings:   decimal.Zero,
		HospitalEarnings: decimal.Zero,
		Doctors:          []*DoctorReport{},
	}

	appts, err := s.ledger.ListByHospital(ctx, hosp.ID)
	if err != nil {
		return nil, err
	}

	byDoctor := make(map[uuid.UUID]*DoctorReport)
	for _, a := range appts {
		doctorShare := nullToZero(a.DoctorShare)
		hospitalShare := nullToZero(a.HospitalShare)

		dr := byDoctor[a.DoctorID]
		if dr == nil {
			dr = &DoctorReport{
				DoctorID:      a.DoctorID,
				DoctorName:    s.doctorName(ctx, a.DoctorID),
				TotalEarnings: decimal.Zero,
				Appointments:  []*AppointmentRow{},
			}
			byDoctor[a.DoctorID] = dr
			report.Doctors = append(report.Doctors, dr)
		}
		dr.AppointmentCount++
		dr.TotalEarnings = dr.TotalEarnings.Add(doctorShare)
		dr.Appointments = append(dr.Appointments, &AppointmentRow{
			ID:            a.ID,
			PatientID:     a.PatientID,
			PatientName:   s.patientName(ctx, a.PatientID, patientNames),
			Date:          a.Date,
			Time:          a.Time,
			AmountPaid:    a.AmountPaid,
			DoctorShare:   doctorShare,
			HospitalShare: hospitalShare,
		})

		report.TotalCollected = report.TotalCollected.Add(a.AmountPaid)
		report.DoctorEarnings = report.DoctorEarnings.Add(doctorShare)
		report.HospitalEarnings = report.HospitalEarnings.Add(hospitalShare)
	}

	sort.Slice(report.Doctors, func(i, j int) bool {
		return report.Doctors[i].DoctorName < report.Doctors[j].DoctorName
	})
	return report, nil
}

// doctorName falls back to an empty name when the profile is gone. The money
// figures stay in the report either way; only the label is lost.
func (s *Service) doctorName(ctx context.Context, id uuid.UUID) string {
	doc, err := s.directory.GetDoctor(ctx, id)
	if err != nil {
		s.log.Warn().Str("doctor_id", id.String()).Err(err).Msg("doctor profile lookup failed")
		return ""
	}
	return doc.Name
}

func (s *Service) patientName(ctx context.Context, id uuid.UUID, cache map[uuid.UUID]string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := ""
	if p, err := s.directory.GetPatient(ctx, id); err != nil {
		s.log.Warn().Str("patient_id", id.String()).Err(err).Msg("patient profile lookup failed")
	} else {
		name = p.Name
	}
	cache[id] = name
	return name
}

func (s *Service) allHospitals(ctx context.Context) ([]*directory.Hospital, error) {
	var all []*directory.Hospital
	for offset := 0; ; offset += listPageSize {
		page, total, err := s.directory.ListHospitals(ctx, listPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

func (s *Service) allPatients(ctx context.Context) ([]*directory.PatientProfile, error) {
	var all []*directory.PatientProfile
	for offset := 0; ; offset += listPageSize {
		page, total, err := s.directory.ListPatients(ctx, listPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
