package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/records"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
)

type RecordsService struct {
	repo    records.Repository
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewRecordsService(repo records.Repository, m *metrics.Collector, log *zap.Logger) *RecordsService {
	return &RecordsService{repo: repo, metrics: m, log: log}
}

func (s *RecordsService) GetRecords(ctx context.Context) (records.Bundle, error) {
	_, span, err := start(ctx, "RecordsService.GetRecords")
	defer span.End()
	if err != nil {
		return records.Bundle{}, err
	}

	return s.repo.GetRecords(), nil
}

func (s *RecordsService) UpdatePCP(ctx context.Context, cmd *records.UpdatePhysicianCommand) (records.Physician, error) {
	_, span, err := start(ctx, "RecordsService.UpdatePCP")
	defer span.End()
	if err != nil {
		return records.Physician{}, err
	}

	pcp := s.repo.UpdatePCP(cmd)
	s.metrics.PCPUpdatesTotal.Inc()

	s.log.Info("primary care physician updated", zap.String("name", pcp.Name))

	return pcp, nil
}

// ScheduleAppointment books a new appointment. The store assigns the id.
func (s *RecordsService) ScheduleAppointment(ctx context.Context, cmd *records.CreateAppointmentCommand) (records.Appointment, error) {
	_, span, err := start(ctx, "RecordsService.ScheduleAppointment")
	defer span.End()
	if err != nil {
		return records.Appointment{}, err
	}

	a := s.repo.AddAppointment(cmd)
	s.metrics.AppointmentsCreated.Inc()
	span.SetAttributes(attribute.Int64("appointment.id", a.ID))

	s.log.Info("appointment scheduled",
		zap.Int64("appointment_id", a.ID),
		zap.String("doctor", a.Doctor),
		zap.String("date", a.Date),
	)

	return a, nil
}
