package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
)

// SystemService exposes whole-snapshot operations used by the demo tooling.
type SystemService struct {
	repo    domain.SnapshotRepository
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewSystemService(repo domain.SnapshotRepository, m *metrics.Collector, log *zap.Logger) *SystemService {
	return &SystemService{repo: repo, metrics: m, log: log}
}

func (s *SystemService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	_, span, err := start(ctx, "SystemService.Snapshot")
	defer span.End()
	if err != nil {
		return domain.Snapshot{}, err
	}

	return s.repo.GetData(), nil
}

// Reset discards every change and restores the seed data.
func (s *SystemService) Reset(ctx context.Context) (domain.Snapshot, error) {
	_, span, err := start(ctx, "SystemService.Reset")
	defer span.End()
	if err != nil {
		return domain.Snapshot{}, err
	}

	snap := s.repo.ResetData()
	s.metrics.StoreResetsTotal.Inc()
	s.metrics.MedicalRecordsShared.Set(float64(user.CountShared(snap.User.MedicalRecords)))

	s.log.Warn("record store reset to seed data")

	return snap, nil
}
