package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"patientbridge-service/internal/app/config"
	"patientbridge-service/internal/app/contracts"
	"patientbridge-service/internal/pkg/constvars"
	"patientbridge-service/internal/pkg/dto/requests"
	"patientbridge-service/internal/pkg/exceptions"
	"patientbridge-service/internal/pkg/fhir_dto"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

// patientFhirClient issues Patient calls against a FHIR server. Every call
// uses a fresh short-lived http.Client bounded by the configured timeout;
// there is no pooling and no retrying across calls.
type patientFhirClient struct {
	DefaultBaseUrl string
	Timeout        time.Duration
	SearchPageSize int
	Log            *zap.Logger
}

func NewPatientFhirClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		client := &patientFhirClient{
			DefaultBaseUrl: internalConfig.FHIR.BaseUrl,
			Timeout:        time.Duration(internalConfig.FHIR.TimeoutInSeconds) * time.Second,
			SearchPageSize: internalConfig.FHIR.SearchPageSize,
			Log:            logger,
		}
		patientFhirClientInstance = client
	})
	return patientFhirClientInstance
}

func (c *patientFhirClient) resourceUrl(baseUrl string) string {
	if baseUrl == "" {
		baseUrl = c.DefaultBaseUrl
	}
	return strings.TrimRight(baseUrl, "/") + "/" + constvars.ResourcePatient
}

func (c *patientFhirClient) SearchPatients(ctx context.Context, baseUrl string, query *requests.SearchPatients) (*fhir_dto.FHIRBundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(c.SearchPageSize))
	if query.Name != "" {
		params.Set(constvars.FhirSearchParamName, query.Name)
	}
	if query.Phone != "" {
		params.Set(constvars.FhirSearchParamTelecom, query.Phone)
	}
	if query.Identifier != "" {
		params.Set(constvars.FhirSearchParamID, query.Identifier)
	}
	if query.Sort != "" {
		params.Set(constvars.FhirSearchParamSort, query.Sort)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet,
		fmt.Sprintf("%s?%s", c.resourceUrl(baseUrl), params.Encode()), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.SearchPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.send(req)
	if err != nil {
		c.Log.Error("patientFhirClient.SearchPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFhirConnection(err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requestID); err != nil {
		return nil, err
	}

	bundle := new(fhir_dto.FHIRBundle)
	if err := json.NewDecoder(resp.Body).Decode(bundle); err != nil {
		c.Log.Error("patientFhirClient.SearchPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeFhirResponse(err, constvars.ResourceBundle)
	}

	c.Log.Info("patientFhirClient.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(bundle.Entry)),
	)
	return bundle, nil
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, baseUrl, patientID string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet,
		fmt.Sprintf("%s/%s", c.resourceUrl(baseUrl), patientID), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.send(req)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFhirConnection(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound || resp.StatusCode == constvars.StatusGone {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if err := c.checkStatus(resp, requestID); err != nil {
		return nil, err
	}

	patientFhir := new(fhir_dto.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patientFhir); err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeFhirResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, baseUrl string, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.resourceUrl(baseUrl), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.send(req)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFhirConnection(err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requestID); err != nil {
		return nil, err
	}

	patientFhir := new(fhir_dto.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patientFhir); err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeFhirResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) UpdatePatient(ctx context.Context, baseUrl string, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut,
		fmt.Sprintf("%s/%s", c.resourceUrl(baseUrl), patient.ID), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.send(req)
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFhirConnection(err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requestID); err != nil {
		return nil, err
	}

	patientFhir := new(fhir_dto.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patientFhir); err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeFhirResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) send(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: c.Timeout}
	return client.Do(req)
}

// checkStatus turns any non-2xx upstream response into an error carrying
// the upstream status code, with OperationOutcome diagnostics attached
// when the server sent one.
func (c *patientFhirClient) checkStatus(resp *http.Response, requestID string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := ""
	bodyBytes, err := io.ReadAll(resp.Body)
	if err == nil {
		detail = string(bodyBytes)
		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			detail = outcome.Issue[0].Diagnostics
		}
	}

	c.Log.Error("patientFhirClient FHIR request failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("detail", detail),
	)
	return exceptions.ErrFhirRequestFailed(resp.StatusCode, detail)
}
