package records

type Repository interface {
	GetRecords() Bundle
	UpdatePCP(cmd *UpdatePhysicianCommand) Physician

	// AddAppointment assigns a fresh id and creation time, then appends.
	AddAppointment(cmd *CreateAppointmentCommand) Appointment
}
