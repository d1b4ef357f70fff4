package config

import (
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wippyai/g2-bridge/errors"
)

//go:embed engine_settings.schema.json
var engineSettingsSchema string

const schemaURL = "engine_settings.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(engineSettingsSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// ValidateEngineSettings checks the engine configuration JSON before it is
// handed to an init call.
func ValidateEngineSettings(settings string) error {
	sch, err := compiled()
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "compile engine settings schema")
	}

	var obj any
	if err := json.Unmarshal([]byte(settings), &obj); err != nil {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("engine_settings").
			Detail("not JSON").
			Cause(err).
			Build()
	}
	if err := sch.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if stderrors.As(err, &ve) {
			ve = leaf(ve)
			path := []string{"engine_settings"}
			if ve.InstanceLocation != "" {
				path = append(path, ve.InstanceLocation)
			}
			return invalid(path, "%s", ve.Message)
		}
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "engine_settings")
	}
	return nil
}

// leaf returns the most specific cause of a validation failure.
func leaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
