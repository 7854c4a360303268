package constvars

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	VerdictUnderweight = "Underweight"
	VerdictNormal      = "Normal"
	VerdictObese       = "Obese"
)

const (
	BMIUnderweightUpperBound = 18.5
	BMINormalUpperBound      = 30.0
)
