package requests

type PredictPremium struct {
	Age        *int     `json:"age" validate:"required,gt=0,lt=120"`
	Weight     *float64 `json:"weight" validate:"required,gt=0"`
	Height     *float64 `json:"height" validate:"required,gt=0"`
	IncomeLPA  *float64 `json:"income_lpa" validate:"required,gt=0"`
	Smoker     *bool    `json:"smoker" validate:"required"`
	City       string   `json:"city" validate:"required"`
	Occupation string   `json:"occupation" validate:"required,occupation"`
}

// PremiumFeatures is the exact feature row the premium model was trained on.
type PremiumFeatures struct {
	BMI           float64 `json:"bmi"`
	AgeGroup      string  `json:"age_group"`
	LifestyleRisk string  `json:"lifestyle_risk"`
	CityTier      int     `json:"city_tier"`
	IncomeLPA     float64 `json:"income_lpa"`
	Occupation    string  `json:"occupation"`
}
