package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/derrors"
)

// Schema displays or exports the JSON Schema for PipSeed configuration files
func Schema(outputPath string, out io.Writer) error {
	schemaJSON := config.GetSchemaJSON()

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
			return derrors.NewOutputError(outputPath, "failed to write schema", err)
		}
		_, _ = fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
		return nil
	}

	_, _ = fmt.Fprintln(out, schemaJSON)
	return nil
}
