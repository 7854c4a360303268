package controllers

import (
	"net/http"
	"patient-service/internal/app/config"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/responses"
	"patient-service/internal/pkg/utils"
)

type HomeController struct {
	InternalConfig *config.InternalConfig
}

func NewHomeController(internalConfig *config.InternalConfig) *HomeController {
	return &HomeController{
		InternalConfig: internalConfig,
	}
}

func (ctrl *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HomeMessage, responses.Home{
		Message: constvars.HomeMessage,
		Version: ctrl.InternalConfig.App.Version,
	})
}

func (ctrl *HomeController) About(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AboutMessage, responses.Home{
		Message: constvars.AboutMessage,
		Version: ctrl.InternalConfig.App.Version,
		Tag:     ctrl.InternalConfig.App.Tag,
	})
}
