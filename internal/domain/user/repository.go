package user

type Repository interface {
	GetUser() Profile
	UpdateUser(cmd *UpdateProfileCommand) Profile

	// UpdateMedicalRecordsAuth recomputes SharedWithER for every record:
	// true when the record id is in ids, false otherwise.
	UpdateMedicalRecordsAuth(ids []int64) []MedicalRecord
}
