package responses

type PredictPremium struct {
	PredictedCategory string `json:"predicted_category"`
}
