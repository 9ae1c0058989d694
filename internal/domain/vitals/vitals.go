package vitals

import (
	"fmt"
	"time"
)

type Metric string

const (
	MetricHeartRate        Metric = "heartRate"
	MetricTemperature      Metric = "temperature"
	MetricSleepScore       Metric = "sleepScore"
	MetricBloodPressure    Metric = "bloodPressure"
	MetricOxygenSaturation Metric = "oxygenSaturation"
)

// JustNow is the label stamped on a metric when it is written.
const JustNow = "Just now"

type HeartRate struct {
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	Status      string    `json:"status,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
	LastChecked string    `json:"lastChecked"`
}

// Reading is a single-valued metric such as temperature or SpO2.
type Reading struct {
	Value           float64   `json:"value"`
	Unit            string    `json:"unit,omitempty"`
	LastUpdated     time.Time `json:"lastUpdated"`
	LastCheckedText string    `json:"lastCheckedText"`
}

type BloodPressure struct {
	Systolic        float64   `json:"systolic"`
	Diastolic       float64   `json:"diastolic"`
	Unit            string    `json:"unit"`
	LastUpdated     time.Time `json:"lastUpdated"`
	LastCheckedText string    `json:"lastCheckedText"`
}

type Snapshot struct {
	HeartRate        HeartRate     `json:"heartRate"`
	Temperature      Reading       `json:"temperature"`
	SleepScore       Reading       `json:"sleepScore"`
	BloodPressure    BloodPressure `json:"bloodPressure"`
	OxygenSaturation Reading       `json:"oxygenSaturation"`
}

type BloodPressureInput struct {
	Systolic  *float64 `json:"systolic"`
	Diastolic *float64 `json:"diastolic"`
}

// UpdateVitalsCommand is a partial vitals update as sent by the watch simulator.
// A nil field means the metric was not measured and stays as it is.
// empty reports whether bp carries no reading. An empty object counts as absent.
func (bp *BloodPressureInput) empty() bool {
	return bp == nil || (bp.Systolic == nil && bp.Diastolic == nil)
}

type UpdateVitalsCommand struct {
	HeartRate        *float64            `json:"heartRate"`
	Temperature      *float64            `json:"temperature"`
	SleepScore       *float64            `json:"sleepScore"`
	BloodPressure    *BloodPressureInput `json:"bloodPressure"`
	OxygenSaturation *float64            `json:"oxygenSaturation"`
}

// Apply writes every metric present in cmd into s and stamps it with now.
func (cmd *UpdateVitalsCommand) Apply(s *Snapshot, now time.Time) {
	if cmd.HeartRate != nil {
		s.HeartRate.Value = *cmd.HeartRate
		s.HeartRate.LastUpdated = now
		s.HeartRate.LastChecked = JustNow
	}
	if cmd.Temperature != nil {
		stamp(&s.Temperature, *cmd.Temperature, now)
	}
	if cmd.SleepScore != nil {
		stamp(&s.SleepScore, *cmd.SleepScore, now)
	}
	if bp := cmd.BloodPressure; !bp.empty() {
		if bp.Systolic != nil {
			s.BloodPressure.Systolic = *bp.Systolic
		}
		if bp.Diastolic != nil {
			s.BloodPressure.Diastolic = *bp.Diastolic
		}
		s.BloodPressure.LastUpdated = now
		s.BloodPressure.LastCheckedText = JustNow
	}
	if cmd.OxygenSaturation != nil {
		stamp(&s.OxygenSaturation, *cmd.OxygenSaturation, now)
	}
}

// Metrics lists the metrics present in cmd, in display order.
func (cmd *UpdateVitalsCommand) Metrics() []Metric {
	var m []Metric
	if cmd.HeartRate != nil {
		m = append(m, MetricHeartRate)
	}
	if cmd.Temperature != nil {
		m = append(m, MetricTemperature)
	}
	if cmd.SleepScore != nil {
		m = append(m, MetricSleepScore)
	}
	if !cmd.BloodPressure.empty() {
		m = append(m, MetricBloodPressure)
	}
	if cmd.OxygenSaturation != nil {
		m = append(m, MetricOxygenSaturation)
	}
	return m
}

func stamp(r *Reading, v float64, now time.Time) {
	r.Value = v
	r.LastUpdated = now
	r.LastCheckedText = JustNow
}

// AgoLabel renders the age of a measurement the way the dashboard shows it.
func AgoLabel(age time.Duration) string {
	switch {
	case age < time.Minute:
		return JustNow
	case age < time.Hour:
		return fmt.Sprintf("%d min ago", int(age/time.Minute))
	case age < 2*time.Hour:
		return "1 hour ago"
	case age < 48*time.Hour:
		return fmt.Sprintf("%d hours ago", int(age/time.Hour))
	default:
		return fmt.Sprintf("%d days ago", int(age/(24*time.Hour)))
	}
}
