package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultSeed_Valid(t *testing.T) {
	assert.NoError(t, DefaultSeed().Validate())
}

func TestLoadSeedFile_OverlaysDefaults(t *testing.T) {
	path := writeSeedFile(t, `
user:
  firstName: Maya
  medicalRecords:
    - id: 10
      title: Allergy Panel
      date: "2025-12-01"
      type: Lab Result
vitals:
  heartRate:
    value: 64
    unit: bpm
    status: Resting
    age: 5m
records:
  pcp:
    name: Dr. Ortiz
`)

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Maya", seed.User.FirstName)
	assert.Equal(t, "Johnson", seed.User.LastName, "unset keys keep their default")
	require.Len(t, seed.User.MedicalRecords, 1)
	assert.Equal(t, int64(10), seed.User.MedicalRecords[0].ID)
	assert.Equal(t, 64.0, seed.Vitals.HeartRate.Value)
	assert.Equal(t, 5*time.Minute, seed.Vitals.HeartRate.Age)
	assert.Equal(t, 98.5, seed.Vitals.Temperature.Value)
	assert.Equal(t, "Dr. Ortiz", seed.Records.PCP.Name)
	assert.Equal(t, "8am - 6pm", seed.Records.PCP.Hours)
	assert.Len(t, seed.Records.Appointments, 2)

	snap := New(WithSeed(seed), WithClock(func() time.Time { return start })).GetVitals()
	assert.Equal(t, "5 min ago", snap.HeartRate.LastChecked)
	assert.Equal(t, "Resting", snap.HeartRate.Status)
}

func TestLoadSeedFile_DuplicateIDs(t *testing.T) {
	path := writeSeedFile(t, `
records:
  appointments:
    - id: 7
      doctor: Dr. A
    - id: 7
      doctor: Dr. B
`)

	_, err := LoadSeedFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSeedFile(writeSeedFile(t, "user: [not, a, map]"))
	assert.Error(t, err)
}
