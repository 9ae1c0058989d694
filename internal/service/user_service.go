package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
)

type UserService struct {
	repo    user.Repository
	metrics *metrics.Collector
	log     *zap.Logger
}

// NewUserService also primes the shared-records gauge, since a seed fixture
// may start with records already shared.
func NewUserService(repo user.Repository, m *metrics.Collector, log *zap.Logger) *UserService {
	m.MedicalRecordsShared.Set(float64(user.CountShared(repo.GetUser().MedicalRecords)))

	return &UserService{
		repo:    repo,
		metrics: m,
		log:     log,
	}
}

func (s *UserService) GetUser(ctx context.Context) (user.Profile, error) {
	_, span, err := start(ctx, "UserService.GetUser")
	defer span.End()
	if err != nil {
		return user.Profile{}, err
	}

	return s.repo.GetUser(), nil
}

// UpdateUser merges the supplied profile fields and refreshes lastUpdated.
func (s *UserService) UpdateUser(ctx context.Context, cmd *user.UpdateProfileCommand) (user.Profile, error) {
	_, span, err := start(ctx, "UserService.UpdateUser")
	defer span.End()
	if err != nil {
		return user.Profile{}, err
	}

	fields := cmd.Fields()
	span.SetAttributes(attribute.StringSlice("user.fields", fields))

	p := s.repo.UpdateUser(cmd)
	s.metrics.ProfileUpdatesTotal.Inc()

	s.log.Info("user updated", zap.Strings("fields", fields))

	return p, nil
}

// ShareMedicalRecords makes exactly the records in ids visible to emergency
// responders and hides the rest.
func (s *UserService) ShareMedicalRecords(ctx context.Context, ids []int64) ([]user.MedicalRecord, error) {
	_, span, err := start(ctx, "UserService.ShareMedicalRecords")
	defer span.End()
	if err != nil {
		return nil, err
	}

	recs := s.repo.UpdateMedicalRecordsAuth(ids)

	shared := user.CountShared(recs)
	s.metrics.MedicalRecordsShared.Set(float64(shared))
	span.SetAttributes(attribute.Int("records.shared", shared))

	s.log.Info("medical record sharing updated",
		zap.Int64s("record_ids", ids),
		zap.Int("shared", shared),
		zap.Int("total", len(recs)),
	)

	return recs, nil
}
