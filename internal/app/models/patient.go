package models

import (
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/dto/responses"
	"strconv"
)

// Patient is the value stored under a patient id. The id itself is the store
// key and is never duplicated here. BMI and Verdict are derived from Height
// and Weight and are rewritten on every refresh.
type Patient struct {
	Name    string   `json:"name" bson:"name"`
	City    string   `json:"city" bson:"city"`
	Age     int      `json:"age" bson:"age"`
	Gender  string   `json:"gender" bson:"gender"`
	Height  float64  `json:"height" bson:"height"`
	Weight  int      `json:"weight" bson:"weight"`
	BMI     *float64 `json:"bmi,omitempty" bson:"bmi,omitempty"`
	Verdict string   `json:"verdict,omitempty" bson:"verdict,omitempty"`
}

// CalculateBMI returns weight / height² rounded to two decimals.
func CalculateBMI(height float64, weight int) float64 {
	bmi := float64(weight) / (height * height)
	// FormatFloat rounds the exact binary value, so half-way cases such as
	// 128 / 1.28² land on 78.12.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(bmi, 'f', 2, 64), 64)
	if err != nil {
		return bmi
	}
	return rounded
}

// BMIVerdict buckets a bmi. Each band includes its lower bound, so 18.5 is
// Normal and 30 is Obese.
func BMIVerdict(bmi float64) string {
	switch {
	case bmi < constvars.BMIUnderweightUpperBound:
		return constvars.VerdictUnderweight
	case bmi < constvars.BMINormalUpperBound:
		return constvars.VerdictNormal
	default:
		return constvars.VerdictObese
	}
}

// RefreshDerivedFields recomputes bmi and verdict. Records without usable
// measurements lose any stale derived values instead of keeping them.
func (p *Patient) RefreshDerivedFields() {
	if p.Height <= 0 || p.Weight <= 0 {
		p.BMI = nil
		p.Verdict = ""
		return
	}
	bmi := CalculateBMI(p.Height, p.Weight)
	p.BMI = &bmi
	p.Verdict = BMIVerdict(bmi)
}

// SortValue returns the value used to order records by field. Missing values
// sort as 0.
func (p Patient) SortValue(field string) float64 {
	switch field {
	case constvars.SortFieldHeight:
		return p.Height
	case constvars.SortFieldWeight:
		return float64(p.Weight)
	case constvars.SortFieldBMI:
		if p.BMI == nil {
			return 0
		}
		return *p.BMI
	}
	return 0
}

// ToCandidate rebuilds a full create request out of the stored record, the
// starting point an update patch is merged onto.
func (p Patient) ToCandidate(patientID string) *requests.CreatePatient {
	name, city, gender := p.Name, p.City, p.Gender
	age, height, weight := p.Age, p.Height, p.Weight
	return &requests.CreatePatient{
		ID:     patientID,
		Name:   &name,
		City:   &city,
		Age:    &age,
		Gender: &gender,
		Height: &height,
		Weight: &weight,
	}
}

// NewPatientFromRequest expects a request that already passed validation.
func NewPatientFromRequest(request *requests.CreatePatient) Patient {
	patient := Patient{
		Name:   *request.Name,
		City:   *request.City,
		Age:    *request.Age,
		Gender: *request.Gender,
		Height: *request.Height,
		Weight: *request.Weight,
	}
	patient.RefreshDerivedFields()
	return patient
}

func (p Patient) ConvertIntoResponse(patientID string) responses.Patient {
	return responses.Patient{
		ID:      patientID,
		Name:    p.Name,
		City:    p.City,
		Age:     p.Age,
		Gender:  p.Gender,
		Height:  p.Height,
		Weight:  p.Weight,
		BMI:     p.BMI,
		Verdict: p.Verdict,
	}
}
