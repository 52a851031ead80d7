package fhirschema

import (
	"os"
	"patientbridge-service/internal/app/contracts"
	"patientbridge-service/internal/pkg/exceptions"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// fhirSchemaValidator holds the schema document compiled once at startup.
// It is read-only afterwards and safe to share across requests.
type fhirSchemaValidator struct {
	Schema *gojsonschema.Schema
	Log    *zap.Logger
}

func NewFhirSchemaValidator(schemaPath string, logger *zap.Logger) (contracts.FhirSchemaValidator, error) {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		logger.Error("fhirSchemaValidator failed to read schema document",
			zap.String("schema_path", schemaPath),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoadSchemaDocument(err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		logger.Error("fhirSchemaValidator failed to compile schema document",
			zap.String("schema_path", schemaPath),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoadSchemaDocument(err)
	}

	logger.Info("fhirSchemaValidator schema document loaded",
		zap.String("schema_path", schemaPath),
	)
	return &fhirSchemaValidator{
		Schema: schema,
		Log:    logger,
	}, nil
}

func (v *fhirSchemaValidator) ValidateResource(resource interface{}) error {
	result, err := v.Schema.Validate(gojsonschema.NewGoLoader(resource))
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	path := first.Field()
	if path == "(root)" {
		path = "root"
	}
	v.Log.Debug("fhirSchemaValidator resource rejected",
		zap.String("path", path),
		zap.String("violation", first.Description()),
	)
	return exceptions.ErrFhirSchemaValidation(path, first.Description())
}
