package constvars

const (
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamSortBy = "sort_by"
	URLQueryParamOrder  = "order"
)

const (
	SortFieldHeight = "height"
	SortFieldWeight = "weight"
	SortFieldBMI    = "bmi"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Order matters, it is echoed back in the invalid field message.
var ValidSortFields = []string{SortFieldHeight, SortFieldBMI, SortFieldWeight}
