package routers

import (
	"patient-service/internal/app/delivery/http/controllers"
	"patient-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPredictionRoutes(router chi.Router, rateLimiter *middlewares.RateLimiter, predictionController *controllers.PredictionController) {
	router.With(rateLimiter.Limit).Post("/predict", predictionController.PredictPremium)
}
