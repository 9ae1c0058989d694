package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/records"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/vitals"
)

var ErrDuplicateID = errors.New("duplicate id in seed")

// Seed is the fixed starting state of the store. Vitals carry an age instead of
// a timestamp so the snapshot can be built relative to any clock.
type Seed struct {
	User    UserSeed    `yaml:"user"`
	Vitals  VitalsSeed  `yaml:"vitals"`
	Records RecordsSeed `yaml:"records"`
}

type UserSeed struct {
	FirstName      string               `yaml:"firstName"`
	LastName       string               `yaml:"lastName"`
	Gender         string               `yaml:"gender"`
	Email          string               `yaml:"email"`
	DateOfBirth    string               `yaml:"dateOfBirth"`
	MedicalRecords []user.MedicalRecord `yaml:"medicalRecords"`
}

type MetricSeed struct {
	Value  float64       `yaml:"value"`
	Unit   string        `yaml:"unit"`
	Status string        `yaml:"status"`
	Age    time.Duration `yaml:"age"`
}

type BloodPressureSeed struct {
	Systolic  float64       `yaml:"systolic"`
	Diastolic float64       `yaml:"diastolic"`
	Unit      string        `yaml:"unit"`
	Age       time.Duration `yaml:"age"`
}

type VitalsSeed struct {
	HeartRate        MetricSeed        `yaml:"heartRate"`
	Temperature      MetricSeed        `yaml:"temperature"`
	SleepScore       MetricSeed        `yaml:"sleepScore"`
	BloodPressure    BloodPressureSeed `yaml:"bloodPressure"`
	OxygenSaturation MetricSeed        `yaml:"oxygenSaturation"`
}

type RecordsSeed struct {
	PCP           records.Physician      `yaml:"pcp"`
	Prescriptions []records.Prescription `yaml:"prescriptions"`
	Appointments  []records.Appointment  `yaml:"appointments"`
}

// DefaultSeed returns the demo patient the dashboard ships with.
func DefaultSeed() Seed {
	return Seed{
		User: UserSeed{
			FirstName:   "Sabrina",
			LastName:    "Johnson",
			Gender:      "Female",
			Email:       "sabrina.johnson@example.com",
			DateOfBirth: "2008-05-15",
			MedicalRecords: []user.MedicalRecord{
				{ID: 1, Title: "Annual Physical Exam", Date: "2025-11-03", Type: "Visit Summary"},
				{ID: 2, Title: "Complete Blood Count", Date: "2025-11-05", Type: "Lab Result"},
				{ID: 3, Title: "Chest X-Ray", Date: "2025-08-21", Type: "Imaging"},
			},
		},
		Vitals: VitalsSeed{
			HeartRate:        MetricSeed{Value: 86, Unit: "bpm", Status: "Normal", Age: time.Minute},
			Temperature:      MetricSeed{Value: 98.5, Unit: "°F", Age: time.Minute},
			SleepScore:       MetricSeed{Value: 76, Age: 36 * time.Hour},
			BloodPressure:    BloodPressureSeed{Systolic: 121, Diastolic: 78, Unit: "mmHg", Age: 42 * time.Minute},
			OxygenSaturation: MetricSeed{Value: 97.5, Unit: "%", Age: 38 * time.Minute},
		},
		Records: RecordsSeed{
			PCP: records.Physician{
				Name:    "Dr. Emma Smith",
				Address: "1320 Riley Dr, Frisco, TX",
				Phone:   "(341) 908-2348",
				Hours:   "8am - 6pm",
			},
			Prescriptions: []records.Prescription{
				{ID: 1, Name: "Aspirin", Dosage: "81mg", Frequency: "Daily", PrescribedBy: "Dr. Smith", Date: "2026-01-15"},
			},
			Appointments: []records.Appointment{
				{ID: 1, Doctor: "Dr. Johnson", Specialty: "Cardiology", Date: "2026-02-05", Time: "10:00 AM", Location: "Heart Center"},
				{ID: 2, Doctor: "Dr. Williams", Specialty: "General Practice", Date: "2026-02-12", Time: "2:30 PM", Location: "Main Clinic"},
			},
		},
	}
}

// LoadSeedFile reads a YAML fixture on top of DefaultSeed. Keys missing from
// the file keep their default; lists present in the file replace the default list.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("reading seed file: %w", err)
	}

	seed := DefaultSeed()
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}

// Validate checks that ids are unique within each list.
func (s Seed) Validate() error {
	if err := uniqueIDs("medicalRecords", s.User.MedicalRecords, func(r user.MedicalRecord) int64 { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("prescriptions", s.Records.Prescriptions, func(p records.Prescription) int64 { return p.ID }); err != nil {
		return err
	}
	return uniqueIDs("appointments", s.Records.Appointments, func(a records.Appointment) int64 { return a.ID })
}

func uniqueIDs[T any](list string, items []T, id func(T) int64) error {
	seen := make(map[int64]struct{}, len(items))
	for _, it := range items {
		k := id(it)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %s id %d", ErrDuplicateID, list, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Snapshot materialises the seed as of now.
func (s Seed) Snapshot(now time.Time) domain.Snapshot {
	v := s.Vitals
	return domain.Snapshot{
		User: user.Profile{
			FirstName:      s.User.FirstName,
			LastName:       s.User.LastName,
			Gender:         s.User.Gender,
			Email:          s.User.Email,
			DateOfBirth:    s.User.DateOfBirth,
			LastUpdated:    now,
			MedicalRecords: append([]user.MedicalRecord{}, s.User.MedicalRecords...),
		},
		Vitals: vitals.Snapshot{
			HeartRate: vitals.HeartRate{
				Value:       v.HeartRate.Value,
				Unit:        v.HeartRate.Unit,
				Status:      v.HeartRate.Status,
				LastUpdated: now.Add(-v.HeartRate.Age),
				LastChecked: vitals.AgoLabel(v.HeartRate.Age),
			},
			Temperature: v.Temperature.reading(now),
			SleepScore:  v.SleepScore.reading(now),
			BloodPressure: vitals.BloodPressure{
				Systolic:        v.BloodPressure.Systolic,
				Diastolic:       v.BloodPressure.Diastolic,
				Unit:            v.BloodPressure.Unit,
				LastUpdated:     now.Add(-v.BloodPressure.Age),
				LastCheckedText: vitals.AgoLabel(v.BloodPressure.Age),
			},
			OxygenSaturation: v.OxygenSaturation.reading(now),
		},
		Records: records.Bundle{
			PCP:           s.Records.PCP,
			Prescriptions: append([]records.Prescription{}, s.Records.Prescriptions...),
			Appointments:  append([]records.Appointment{}, s.Records.Appointments...),
		},
	}
}

func (m MetricSeed) reading(now time.Time) vitals.Reading {
	return vitals.Reading{
		Value:           m.Value,
		Unit:            m.Unit,
		LastUpdated:     now.Add(-m.Age),
		LastCheckedText: vitals.AgoLabel(m.Age),
	}
}
