package service

import (
	"context"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/records"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/vitals"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/store"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
)

var spans = tracetest.NewSpanRecorder()

func TestMain(m *testing.M) {
	// The package tracer delegates to the first provider installed.
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)))
	os.Exit(m.Run())
}

type fixture struct {
	store   *store.Store
	metrics *metrics.Collector
	logs    *observer.ObservedLogs
	log     *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return &fixture{
		store:   store.New(),
		metrics: metrics.NewCollector("lifelink", prometheus.NewRegistry()),
		logs:    logs,
		log:     zap.New(core),
	}
}

func ptr[T any](v T) *T { return &v }

func spanNames() []string {
	var names []string
	for _, s := range spans.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func TestUserService_UpdateUser(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.store, f.metrics, f.log)

	p, err := svc.UpdateUser(context.Background(), &user.UpdateProfileCommand{
		FirstName: ptr("Sabi"),
		Gender:    ptr("Non-binary"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Sabi", p.FirstName)
	assert.Equal(t, "Johnson", p.LastName)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ProfileUpdatesTotal))

	entries := f.logs.FilterMessage("user updated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"firstName", "gender"}, entries[0].ContextMap()["fields"])

	assert.Contains(t, spanNames(), "UserService.UpdateUser")
}

func TestUserService_ShareMedicalRecords(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.store, f.metrics, f.log)

	recs, err := svc.ShareMedicalRecords(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, 2, user.CountShared(recs))
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.MedicalRecordsShared))

	recs, err = svc.ShareMedicalRecords(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, user.CountShared(recs))
	assert.Zero(t, testutil.ToFloat64(f.metrics.MedicalRecordsShared))
}

func TestUserService_CancelledContext(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.store, f.metrics, f.log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.UpdateUser(ctx, &user.UpdateProfileCommand{FirstName: ptr("Nope")})
	require.ErrorIs(t, err, context.Canceled)

	p, err := svc.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sabrina", p.FirstName, "cancelled update must not reach the store")
	assert.Zero(t, testutil.ToFloat64(f.metrics.ProfileUpdatesTotal))
}

func TestVitalsService_RecordVitals(t *testing.T) {
	f := newFixture(t)
	svc := NewVitalsService(f.store, f.metrics, f.log)

	snap, err := svc.RecordVitals(context.Background(), &vitals.UpdateVitalsCommand{
		HeartRate:     ptr(101.0),
		BloodPressure: &vitals.BloodPressureInput{Systolic: ptr(125.0), Diastolic: ptr(80.0)},
	})
	require.NoError(t, err)

	assert.Equal(t, 101.0, snap.HeartRate.Value)
	assert.Equal(t, 125.0, snap.BloodPressure.Systolic)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VitalsUpdatesTotal.WithLabelValues("heartRate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VitalsUpdatesTotal.WithLabelValues("bloodPressure")))
	assert.Zero(t, testutil.ToFloat64(f.metrics.VitalsUpdatesTotal.WithLabelValues("temperature")))

	assert.Equal(t, 1, f.logs.FilterMessage("vitals updated").Len())
}

func TestVitalsService_EmptyUpdate(t *testing.T) {
	f := newFixture(t)
	svc := NewVitalsService(f.store, f.metrics, f.log)
	before, err := svc.GetVitals(context.Background())
	require.NoError(t, err)

	snap, err := svc.RecordVitals(context.Background(), &vitals.UpdateVitalsCommand{})
	require.NoError(t, err)

	assert.Equal(t, before, snap)
	assert.Equal(t, 1, f.logs.FilterMessage("vitals update carried no metrics").Len())
}

func TestRecordsService(t *testing.T) {
	f := newFixture(t)
	svc := NewRecordsService(f.store, f.metrics, f.log)
	ctx := context.Background()

	pcp, err := svc.UpdatePCP(ctx, &records.UpdatePhysicianCommand{Hours: ptr("9am - 5pm")})
	require.NoError(t, err)
	assert.Equal(t, "9am - 5pm", pcp.Hours)
	assert.Equal(t, "Dr. Emma Smith", pcp.Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PCPUpdatesTotal))

	a, err := svc.ScheduleAppointment(ctx, &records.CreateAppointmentCommand{
		Doctor:    "Dr. Rivera",
		Specialty: "Neurology",
		Date:      "2026-04-02",
		Time:      "1:00 PM",
		Location:  "North Campus",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AppointmentsCreated))

	bundle, err := svc.GetRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, bundle.Appointments, 3)
	assert.Equal(t, pcp, bundle.PCP)
}

func TestSystemService_Reset(t *testing.T) {
	f := newFixture(t)
	sys := NewSystemService(f.store, f.metrics, f.log)
	users := NewUserService(f.store, f.metrics, f.log)
	ctx := context.Background()

	_, err := users.ShareMedicalRecords(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	_, err = users.UpdateUser(ctx, &user.UpdateProfileCommand{Email: ptr("x@example.com")})
	require.NoError(t, err)

	snap, err := sys.Reset(ctx)
	require.NoError(t, err)

	assert.Equal(t, "sabrina.johnson@example.com", snap.User.Email)
	assert.Zero(t, user.CountShared(snap.User.MedicalRecords))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.StoreResetsTotal))
	assert.Zero(t, testutil.ToFloat64(f.metrics.MedicalRecordsShared))
	assert.Equal(t, 1, f.logs.FilterLevelExact(zapcore.WarnLevel).Len())

	data, err := sys.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.User.Email, data.User.Email)
}

func TestNewUserService_PrimesSharedGauge(t *testing.T) {
	seed := store.DefaultSeed()
	seed.User.MedicalRecords[0].SharedWithER = true
	seed.User.MedicalRecords[2].SharedWithER = true

	m := metrics.NewCollector("lifelink", prometheus.NewRegistry())
	NewUserService(store.New(store.WithSeed(seed)), m, zap.NewNop())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MedicalRecordsShared))
}
