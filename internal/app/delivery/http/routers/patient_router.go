package routers

import (
	"fmt"
	"patient-service/internal/app/delivery/http/controllers"
	"patient-service/internal/app/delivery/http/middlewares"
	"patient-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Get("/view", patientController.FindAll)
	router.Get(fmt.Sprintf("/patient/{%s}", constvars.URLParamPatientID), patientController.FindByID)
	router.Get("/sort", patientController.FindAllSorted)
	router.Post("/create", patientController.Create)
	router.Put(fmt.Sprintf("/edit/{%s}", constvars.URLParamPatientID), patientController.Update)
}
