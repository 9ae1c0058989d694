package domain

import (
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/records"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/vitals"
)

// Snapshot is the whole in-memory record at a point in time.
type Snapshot struct {
	User    user.Profile    `json:"user"`
	Vitals  vitals.Snapshot `json:"vitals"`
	Records records.Bundle  `json:"records"`
}

func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		User:    s.User.Clone(),
		Vitals:  s.Vitals,
		Records: s.Records.Clone(),
	}
}

type SnapshotRepository interface {
	GetData() Snapshot
	ResetData() Snapshot
}
