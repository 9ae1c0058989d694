package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/vitals"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
)

type VitalsService struct {
	repo    vitals.Repository
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewVitalsService(repo vitals.Repository, m *metrics.Collector, log *zap.Logger) *VitalsService {
	return &VitalsService{repo: repo, metrics: m, log: log}
}

func (s *VitalsService) GetVitals(ctx context.Context) (vitals.Snapshot, error) {
	_, span, err := start(ctx, "VitalsService.GetVitals")
	defer span.End()
	if err != nil {
		return vitals.Snapshot{}, err
	}

	return s.repo.GetVitals(), nil
}

// RecordVitals stores a reading from the watch. Metrics missing from cmd keep
// their previous value and label.
func (s *VitalsService) RecordVitals(ctx context.Context, cmd *vitals.UpdateVitalsCommand) (vitals.Snapshot, error) {
	_, span, err := start(ctx, "VitalsService.RecordVitals")
	defer span.End()
	if err != nil {
		return vitals.Snapshot{}, err
	}

	updated := cmd.Metrics()
	names := make([]string, len(updated))
	for i, m := range updated {
		names[i] = string(m)
		s.metrics.VitalsUpdatesTotal.WithLabelValues(names[i]).Inc()
	}
	span.SetAttributes(attribute.StringSlice("vitals.metrics", names))

	snap := s.repo.UpdateVitals(cmd)

	if len(names) == 0 {
		s.log.Debug("vitals update carried no metrics")
	} else {
		s.log.Info("vitals updated", zap.Strings("metrics", names))
	}

	return snap, nil
}
