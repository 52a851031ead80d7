package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/dto/responses"
	"patientbridge-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientUsecase struct {
	Summaries []responses.PatientSummary
	Summary   *responses.PatientSummary
	Err       error

	ListSort      string
	ListServerURL string
	SearchRequest *requests.SearchPatients
	CreateRequest *requests.CreatePatient
	UpdateRequest *requests.UpdatePatient
}

func (s *stubPatientUsecase) ListPatients(ctx context.Context, fhirServerURL, sort string) ([]responses.PatientSummary, error) {
	s.ListServerURL = fhirServerURL
	s.ListSort = sort
	return s.Summaries, s.Err
}

func (s *stubPatientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) ([]responses.PatientSummary, error) {
	s.SearchRequest = request
	return s.Summaries, s.Err
}

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientSummary, error) {
	s.CreateRequest = request
	return s.Summary, s.Err
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.PatientSummary, error) {
	s.UpdateRequest = request
	return s.Summary, s.Err
}

type errorBody struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

func newController(usecase *stubPatientUsecase) *PatientController {
	return &PatientController{
		Log:            zap.NewNop(),
		PatientUsecase: usecase,
	}
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func withPatientID(r *http.Request, patientID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(constvars.URLParamPatientID, patientID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListPatientsController(t *testing.T) {
	t.Run("Success Envelope", func(t *testing.T) {
		usecase := &stubPatientUsecase{
			Summaries: []responses.PatientSummary{{ID: "p1"}, {ID: "p2"}},
		}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/patients?fhir_server_url=http://other.example/fhir&sort=-_lastUpdated", nil)
		ctrl.ListPatients(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "http://other.example/fhir", usecase.ListServerURL)
		assert.Equal(t, "-_lastUpdated", usecase.ListSort)

		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, constvars.PatientListSuccess, body.Message)
	})

	t.Run("Upstream Failure Envelope", func(t *testing.T) {
		usecase := &stubPatientUsecase{Err: exceptions.ErrFhirConnection(errors.New("refused"))}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		ctrl.ListPatients(recorder, httptest.NewRequest(http.MethodGet, "/patients", nil))

		assert.Equal(t, constvars.StatusBadGateway, recorder.Code)
		body := decodeError(t, recorder)
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientFhirConnection, body.Message)
	})
}

func TestSearchPatientsController(t *testing.T) {
	t.Run("Query Params Reach The Usecase", func(t *testing.T) {
		usecase := &stubPatientUsecase{Summaries: []responses.PatientSummary{}}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/patients/search?name=john&phone=628&identifier=MRN-42", nil)
		ctrl.SearchPatients(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, usecase.SearchRequest)
		assert.Equal(t, "john", usecase.SearchRequest.Name)
		assert.Equal(t, "628", usecase.SearchRequest.Phone)
		assert.Equal(t, "MRN-42", usecase.SearchRequest.Identifier)
	})
}

func TestCreatePatientController(t *testing.T) {
	t.Run("Valid Body", func(t *testing.T) {
		usecase := &stubPatientUsecase{Summary: &responses.PatientSummary{ID: "created-1"}}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/patients",
			strings.NewReader(`{"given":" John ","family":"Doe","gender":"male","birthDate":"1990-05-04","phone":628123456789}`))
		ctrl.CreatePatient(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, usecase.CreateRequest)
		assert.Equal(t, "John", usecase.CreateRequest.Given, "whitespace trimmed before the usecase")
	})

	t.Run("Malformed JSON Is Bad Request", func(t *testing.T) {
		ctrl := newController(&stubPatientUsecase{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{not json`))
		ctrl.CreatePatient(recorder, request)

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
	})

	t.Run("Float Phone Is Unprocessable", func(t *testing.T) {
		usecase := &stubPatientUsecase{}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/patients",
			strings.NewReader(`{"given":"John","family":"Doe","gender":"male","birthDate":"1990-05-04","phone":123.5}`))
		ctrl.CreatePatient(recorder, request)

		assert.Equal(t, constvars.StatusUnprocessableEntity, recorder.Code)
		body := decodeError(t, recorder)
		assert.Equal(t, "phone must be a valid integer", body.Message)
		assert.Nil(t, usecase.CreateRequest)
	})

	t.Run("Missing Field Is Unprocessable", func(t *testing.T) {
		usecase := &stubPatientUsecase{}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/patients",
			strings.NewReader(`{"given":"John","gender":"male","birthDate":"1990-05-04","phone":1}`))
		ctrl.CreatePatient(recorder, request)

		assert.Equal(t, constvars.StatusUnprocessableEntity, recorder.Code)
		body := decodeError(t, recorder)
		assert.Contains(t, body.Message, "family")
		assert.Nil(t, usecase.CreateRequest)
	})

	t.Run("Whitespace Only Field Is Unprocessable", func(t *testing.T) {
		ctrl := newController(&stubPatientUsecase{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/patients",
			strings.NewReader(`{"given":"John","family":"   ","gender":"male","birthDate":"1990-05-04","phone":1}`))
		ctrl.CreatePatient(recorder, request)

		assert.Equal(t, constvars.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestUpdatePatientController(t *testing.T) {
	t.Run("Path ID And Override Reach The Usecase", func(t *testing.T) {
		usecase := &stubPatientUsecase{Summary: &responses.PatientSummary{ID: "p1"}}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPut, "/patients/p1?fhir_server_url=http://other.example/fhir",
			strings.NewReader(`{"given":"Jane","phone":""}`))
		ctrl.UpdatePatient(recorder, withPatientID(request, "p1"))

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, usecase.UpdateRequest)
		assert.Equal(t, "p1", usecase.UpdateRequest.PatientID)
		assert.Equal(t, "http://other.example/fhir", usecase.UpdateRequest.FhirServerURL)
		require.NotNil(t, usecase.UpdateRequest.Phone)
		assert.True(t, usecase.UpdateRequest.Phone.Clear)
	})

	t.Run("Empty Present Field Is Unprocessable", func(t *testing.T) {
		usecase := &stubPatientUsecase{}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPut, "/patients/p1", strings.NewReader(`{"gender":"  "}`))
		ctrl.UpdatePatient(recorder, withPatientID(request, "p1"))

		assert.Equal(t, constvars.StatusUnprocessableEntity, recorder.Code)
		assert.Nil(t, usecase.UpdateRequest)
	})

	t.Run("Not Found Passthrough", func(t *testing.T) {
		usecase := &stubPatientUsecase{Err: exceptions.ErrPatientNotFound(nil)}
		ctrl := newController(usecase)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPut, "/patients/missing", strings.NewReader(`{"given":"Jane"}`))
		ctrl.UpdatePatient(recorder, withPatientID(request, "missing"))

		assert.Equal(t, constvars.StatusNotFound, recorder.Code)
		body := decodeError(t, recorder)
		assert.Equal(t, constvars.ErrClientPatientNotFound, body.Message)
	})
}
