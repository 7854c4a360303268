package predictions

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/dto/responses"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type predictionUsecase struct {
	Predictor contracts.PremiumPredictor
	Log       *zap.Logger
}

func NewPredictionUsecase(predictor contracts.PremiumPredictor, logger *zap.Logger) contracts.PredictionUsecase {
	return &predictionUsecase{
		Predictor: predictor,
		Log:       logger,
	}
}

func (uc *predictionUsecase) PredictPremium(ctx context.Context, request *requests.PredictPremium) (*responses.PredictPremium, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("predictionUsecase.PredictPremium called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizePredictPremiumRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("predictionUsecase.PredictPremium validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	features := BuildPremiumFeatures(request)
	uc.Log.Debug("predictionUsecase.PredictPremium features built",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFeaturesKey, features),
	)

	label, err := uc.Predictor.Predict(ctx, features)
	if err != nil {
		uc.Log.Error("predictionUsecase.PredictPremium error calling predictor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("predictionUsecase.PredictPremium succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPredictedLabelKey, label),
	)
	return &responses.PredictPremium{PredictedCategory: label}, nil
}
