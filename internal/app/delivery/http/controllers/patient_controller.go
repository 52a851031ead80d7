package controllers

import (
	"encoding/json"
	"net/http"
	"patientbridge-service/internal/app/contracts"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/exceptions"
	"patientbridge-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	fhirServerURL := r.URL.Query().Get(constvars.URLQueryParamFhirServerURL)
	sort := r.URL.Query().Get(constvars.URLQueryParamSort)

	ctrl.Log.Debug("Patient listing started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFhirServerKey, fhirServerURL),
	)

	summaries, err := ctrl.PatientUsecase.ListPatients(r.Context(), fhirServerURL, sort)
	if err != nil {
		ctrl.Log.Error("Failed to list patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientListSuccess, summaries)
}

func (ctrl *PatientController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := r.URL.Query()
	request := &requests.SearchPatients{
		Name:          query.Get(constvars.URLQueryParamName),
		Phone:         query.Get(constvars.URLQueryParamPhone),
		Identifier:    query.Get(constvars.URLQueryParamIdentifier),
		Sort:          query.Get(constvars.URLQueryParamSort),
		FhirServerURL: query.Get(constvars.URLQueryParamFhirServerURL),
	}

	ctrl.Log.Debug("Patient search started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	summaries, err := ctrl.PatientUsecase.SearchPatients(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Failed to search patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientSearchSuccess, summaries)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRequestBody(err))
		return
	}
	request.FhirServerURL = r.URL.Query().Get(constvars.URLQueryParamFhirServerURL)

	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	summary, err := ctrl.PatientUsecase.CreatePatient(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Failed to create patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Patient created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, summary.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientCreatedSuccess, summary)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidRequestBody(err))
		return
	}
	request.PatientID = patientID
	request.FhirServerURL = r.URL.Query().Get(constvars.URLQueryParamFhirServerURL)

	utils.SanitizeUpdatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	summary, err := ctrl.PatientUsecase.UpdatePatient(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Failed to update patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Patient updated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, summary.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedSuccess, summary)
}
