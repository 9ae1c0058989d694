package user

import (
	"strings"
	"time"
)

// MedicalRecord is a document in the patient's chart. SharedWithER marks it as
// visible to emergency responders.
type MedicalRecord struct {
	ID           int64  `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Date         string `json:"date" yaml:"date"`
	Type         string `json:"type" yaml:"type"`
	SharedWithER bool   `json:"sharedWithER" yaml:"sharedWithER"`
}

type Profile struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Gender      string    `json:"gender"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dateOfBirth"` // YYYY-MM-DD
	LastUpdated time.Time `json:"lastUpdated"`

	MedicalRecords []MedicalRecord `json:"medicalRecords"`
}

func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Clone returns a copy that shares no memory with p.
func (p Profile) Clone() Profile {
	p.MedicalRecords = append([]MedicalRecord(nil), p.MedicalRecords...)
	if p.MedicalRecords == nil {
		p.MedicalRecords = []MedicalRecord{}
	}
	return p
}

// CountShared returns how many records are visible to emergency responders.
func CountShared(recs []MedicalRecord) int {
	n := 0
	for _, r := range recs {
		if r.SharedWithER {
			n++
		}
	}
	return n
}

// UpdateProfileCommand carries a partial profile update. Nil fields are left untouched.
type UpdateProfileCommand struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Gender      *string `json:"gender"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// Apply merges the supplied fields into p. It does not touch LastUpdated.
func (cmd *UpdateProfileCommand) Apply(p *Profile) {
	if cmd.FirstName != nil {
		p.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		p.LastName = *cmd.LastName
	}
	if cmd.Gender != nil {
		p.Gender = *cmd.Gender
	}
	if cmd.Email != nil {
		p.Email = *cmd.Email
	}
	if cmd.DateOfBirth != nil {
		p.DateOfBirth = *cmd.DateOfBirth
	}
}

// Fields lists the json names of the fields present in the command.
func (cmd *UpdateProfileCommand) Fields() []string {
	var fields []string
	if cmd.FirstName != nil {
		fields = append(fields, "firstName")
	}
	if cmd.LastName != nil {
		fields = append(fields, "lastName")
	}
	if cmd.Gender != nil {
		fields = append(fields, "gender")
	}
	if cmd.Email != nil {
		fields = append(fields, "email")
	}
	if cmd.DateOfBirth != nil {
		fields = append(fields, "dateOfBirth")
	}
	return fields
}
