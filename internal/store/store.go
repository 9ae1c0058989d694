// Package store holds the process-local health record behind the API.
//
// A Store owns a single snapshot of {user, vitals, records}. Reads return deep
// copies; writes merge under a mutex with last-write-wins semantics. Nothing is
// persisted: the snapshot lives for the life of the process and ResetData puts
// it back to the seed it was created from.
package store

import (
	"sync"
	"time"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/records"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/vitals"
)

var (
	_ domain.SnapshotRepository = (*Store)(nil)
	_ user.Repository           = (*Store)(nil)
	_ vitals.Repository         = (*Store)(nil)
	_ records.Repository        = (*Store)(nil)
)

type Store struct {
	mu   sync.RWMutex
	data domain.Snapshot

	seed Seed
	now  func() time.Time

	// next id handed out by AddAppointment
	nextAppointmentID int64
}

type Option func(*Store)

// WithClock replaces time.Now. Tests use it to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed replaces DefaultSeed as the initial and reset state.
func WithSeed(seed Seed) Option {
	return func(s *Store) { s.seed = seed }
}

func New(opts ...Option) *Store {
	s := &Store{
		seed: DefaultSeed(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// load replaces the snapshot with the seed. Callers hold mu, except New.
func (s *Store) load() {
	s.data = s.seed.Snapshot(s.now().UTC())

	var maxID int64
	for _, a := range s.data.Records.Appointments {
		maxID = max(maxID, a.ID)
	}
	s.nextAppointmentID = maxID + 1
}

func (s *Store) GetData() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *Store) ResetData() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.data.Clone()
}

func (s *Store) GetUser() user.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.User.Clone()
}

func (s *Store) UpdateUser(cmd *user.UpdateProfileCommand) user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd.Apply(&s.data.User)
	s.data.User.LastUpdated = s.now().UTC()
	return s.data.User.Clone()
}

func (s *Store) UpdateMedicalRecordsAuth(ids []int64) []user.MedicalRecord {
	shared := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		shared[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.data.User.MedicalRecords
	for i := range recs {
		_, ok := shared[recs[i].ID]
		recs[i].SharedWithER = ok
	}
	return s.data.User.Clone().MedicalRecords
}

func (s *Store) GetVitals() vitals.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Vitals
}

func (s *Store) UpdateVitals(cmd *vitals.UpdateVitalsCommand) vitals.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd.Apply(&s.data.Vitals, s.now().UTC())
	return s.data.Vitals
}

func (s *Store) GetRecords() records.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Records.Clone()
}

func (s *Store) UpdatePCP(cmd *records.UpdatePhysicianCommand) records.Physician {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd.Apply(&s.data.Records.PCP)
	return s.data.Records.PCP
}

func (s *Store) AddAppointment(cmd *records.CreateAppointmentCommand) records.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now().UTC()
	a := records.Appointment{
		ID:        s.nextAppointmentID,
		Doctor:    cmd.Doctor,
		Specialty: cmd.Specialty,
		Date:      cmd.Date,
		Time:      cmd.Time,
		Location:  cmd.Location,
		CreatedAt: &createdAt,
	}
	s.nextAppointmentID++
	s.data.Records.Appointments = append(s.data.Records.Appointments, a)

	out := a
	t := createdAt
	out.CreatedAt = &t
	return out
}
