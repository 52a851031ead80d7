package routers

import (
	"fmt"
	"patientbridge-service/internal/app/delivery/http/controllers"
	"patientbridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRouter(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Get("/search", patientController.SearchPatients)
	router.Post("/", patientController.CreatePatient)
	router.Put(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.UpdatePatient)
}
