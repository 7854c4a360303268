package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HomeMessage  = "Patient Management System API!"
	AboutMessage = "A fully functional API to access patients data"

	GetPatientsSuccessMessage       = "get patients successfully"
	GetPatientSuccessMessage        = "get patient successfully"
	GetSortedPatientsSuccessMessage = "get sorted patients successfully"
	CreatePatientSuccessMessage     = "Patient with id %s has been added successfully."
	UpdatePatientSuccessMessage     = "Patient successfully updated"
	PredictPremiumSuccessMessage    = "premium category predicted successfully"
)
