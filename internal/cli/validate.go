package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pipseed/pipseed/internal/config"
)

// ValidateParams contains parameters for Validate
type ValidateParams struct {
	Path string // config file, discovered in Dir when empty
	Dir  string
	Out  io.Writer
}

// Validate validates a PipSeed configuration file
func Validate(params ValidateParams) error {
	configPath := params.Path
	if configPath == "" {
		dir := params.Dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			dir = wd
		}

		path, ok := config.FindLocalConfig(dir)
		if !ok {
			return fmt.Errorf("no config file found in %s", dir)
		}
		configPath = path
	}

	out := params.Out
	_, _ = fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Schema first; semantic checks only make sense on a well-formed file.
	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}
	if result.Valid {
		semantic, err := config.Validate(configPath)
		if err != nil {
			return err
		}
		result.Merge(semantic)
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	_, _ = fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}
	_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
