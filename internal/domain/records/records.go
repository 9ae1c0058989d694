package records

import "time"

// Physician is the patient's primary care physician.
type Physician struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
	Hours   string `json:"hours" yaml:"hours"`
}

type Prescription struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Dosage       string `json:"dosage" yaml:"dosage"`       // e.g. "81mg"
	Frequency    string `json:"frequency" yaml:"frequency"` // e.g. "Daily"
	PrescribedBy string `json:"prescribedBy" yaml:"prescribedBy"`
	Date         string `json:"date" yaml:"date"`
}

type Appointment struct {
	ID        int64  `json:"id" yaml:"id"`
	Doctor    string `json:"doctor" yaml:"doctor"`
	Specialty string `json:"specialty" yaml:"specialty"`
	Date      string `json:"date" yaml:"date"`
	Time      string `json:"time" yaml:"time"`
	Location  string `json:"location" yaml:"location"`

	// Nil for seeded appointments; set when booked through the API.
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"-"`
}

type Bundle struct {
	PCP           Physician      `json:"pcp"`
	Prescriptions []Prescription `json:"prescriptions"`
	Appointments  []Appointment  `json:"appointments"`
}

// Clone returns a copy that shares no memory with b.
func (b Bundle) Clone() Bundle {
	b.Prescriptions = append([]Prescription{}, b.Prescriptions...)
	appts := make([]Appointment, len(b.Appointments))
	for i, a := range b.Appointments {
		if a.CreatedAt != nil {
			t := *a.CreatedAt
			a.CreatedAt = &t
		}
		appts[i] = a
	}
	b.Appointments = appts
	return b
}

// UpdatePhysicianCommand is a partial PCP update. Nil fields are left untouched.
type UpdatePhysicianCommand struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Hours   *string `json:"hours"`
}

func (cmd *UpdatePhysicianCommand) Apply(p *Physician) {
	if cmd.Name != nil {
		p.Name = *cmd.Name
	}
	if cmd.Address != nil {
		p.Address = *cmd.Address
	}
	if cmd.Phone != nil {
		p.Phone = *cmd.Phone
	}
	if cmd.Hours != nil {
		p.Hours = *cmd.Hours
	}
}

type CreateAppointmentCommand struct {
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
}
