package responses

type Patient struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Age     int      `json:"age"`
	Gender  string   `json:"gender"`
	Height  float64  `json:"height"`
	Weight  int      `json:"weight"`
	BMI     *float64 `json:"bmi,omitempty"`
	Verdict string   `json:"verdict,omitempty"`
}

type PatientCreated struct {
	ID string `json:"id"`
}

type Home struct {
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
	Tag     string `json:"tag,omitempty"`
}
