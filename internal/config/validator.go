package config

import (
	"fmt"
	"os"

	"github.com/pipseed/pipseed/internal/format"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Merge appends the errors of other to r.
func (r *ValidationResult) Merge(other *ValidationResult) {
	for _, e := range other.Errors {
		r.addError(e.Field, e.Message)
	}
}

// Validate loads a config file over the defaults and checks the rules the
// schema cannot express: templates must parse and values must be usable.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := New().Load(path)
	if err != nil {
		result.addError("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	CheckConfig(cfg, result)
	return result, nil
}

// CheckConfig adds to result every semantic problem found in cfg.
func CheckConfig(cfg *Config, result *ValidationResult) {
	if _, err := ParseTemplate("banner", cfg.Banner); err != nil {
		result.addError("banner", err.Error())
	}

	if cfg.Generate.Output != "" {
		if _, err := ParseTemplate("output", cfg.Generate.Output); err != nil {
			result.addError("generate/output", err.Error())
		}
	}

	if _, err := format.Parse(cfg.Generate.Format); err != nil {
		result.addError("generate/format", err.Error())
	}

	if err := format.ValidateTable(cfg.Generate.Table); err != nil {
		result.addError("generate/table", err.Error())
	}

	if cfg.Generate.Count < 0 {
		result.addError("generate/count", fmt.Sprintf("count must not be negative, got %d", cfg.Generate.Count))
	}
}
