package controllers

import (
	"context"
	"net/http"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PredictionController struct {
	Log               *zap.Logger
	PredictionUsecase contracts.PredictionUsecase
}

func NewPredictionController(logger *zap.Logger, predictionUsecase contracts.PredictionUsecase) *PredictionController {
	return &PredictionController{
		Log:               logger,
		PredictionUsecase: predictionUsecase,
	}
}

func (ctrl *PredictionController) PredictPremium(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PredictionController.PredictPremium requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PredictionController.PredictPremium called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.PredictPremium)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("PredictionController.PredictPremium error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.PredictPremium(ctx, request)
	if err != nil {
		ctrl.Log.Error("PredictionController.PredictPremium error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PredictionController.PredictPremium succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPredictedLabelKey, result.PredictedCategory),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictPremiumSuccessMessage, result)
}
