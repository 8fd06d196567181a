// Package schemas provides JSON Schema validation for generated content
// payloads. Schemas are embedded at compile time, one per generation kind,
// and act as a structural pre-check before the payload is decoded into its
// typed shape.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mtruong/skillswap/internal/types"
)

//go:embed *.json
var schemaFiles embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// schemaFileFor maps a generation kind to its embedded schema file.
func schemaFileFor(kind types.GenerationKind) (string, error) {
	switch kind {
	case types.KindSkills:
		return "skills.json", nil
	case types.KindRoadmap:
		return "roadmap.json", nil
	case types.KindQuiz:
		return "quiz.json", nil
	case types.KindMatch:
		return "match.json", nil
	default:
		return "", fmt.Errorf("no schema for generation kind %q", kind)
	}
}

// ValidateKind validates raw JSON content against the embedded schema for
// the given generation kind.
func ValidateKind(kind types.GenerationKind, jsonContent string) error {
	filename, err := schemaFileFor(kind)
	if err != nil {
		return err
	}

	schemaBytes, err := schemaFiles.ReadFile(filename)
	if err != nil {
		return &SchemaLoadError{Name: filename, Message: "embedded schema missing", Cause: err}
	}

	return ValidateJSONString(string(schemaBytes), jsonContent)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
