package vitals

type Repository interface {
	GetVitals() Snapshot
	UpdateVitals(cmd *UpdateVitalsCommand) Snapshot
}
