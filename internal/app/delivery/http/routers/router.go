package routers

import (
	"net/http"
	"patientbridge-service/internal/app/config"
	"patientbridge-service/internal/app/delivery/http/controllers"
	"patientbridge-service/internal/app/delivery/http/middlewares"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/responses"
	"patientbridge-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", serviceInfoHandler(internalConfig))

	router.Route("/patients", func(r chi.Router) {
		attachPatientRouter(r, patientController)
	})
}

func serviceInfoHandler(internalConfig *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, responses.ServiceInfo{
			Message: "Patient Bridge API running",
			Version: internalConfig.App.Version,
		})
	}
}
