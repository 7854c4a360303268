package routers

import (
	"patient-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHomeRoutes(router chi.Router, homeController *controllers.HomeController) {
	router.Get("/", homeController.Home)
	router.Get("/about", homeController.About)
}
