package patients

import "errors"

// Repository sentinels, translated into client facing errors by the usecase.
var (
	ErrPatientDuplicate = errors.New("patient id already present in store")
	ErrPatientMissing   = errors.New("patient id not present in store")
)
