package controllers

import (
	"context"
	"errors"
	"net/http"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// buildUsecaseErrorResponse reports a request that ran out of time as such
// and passes every other error through untouched.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
