package contracts

import (
	"context"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/dto/responses"
)

type PredictionUsecase interface {
	PredictPremium(ctx context.Context, request *requests.PredictPremium) (*responses.PredictPremium, error)
}

// PremiumPredictor is the trained model, reached as a black box.
type PremiumPredictor interface {
	Predict(ctx context.Context, features requests.PremiumFeatures) (string, error)
}
