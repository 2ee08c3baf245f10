package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/derrors"
)

// InitParams contains parameters for Init
type InitParams struct {
	Dir    string // directory for a local config
	Global bool
	Out    io.Writer
}

const sampleConfig = `# PipSeed configuration file
# Run 'pipseed schema' to get the JSON Schema of this file.

# Text shown before each instruction
# prompt: "Please, write your instruction :"

# Welcome text, rendered with text/template and sprig (.Name, .Version)
# banner: |
#   Welcome to {{ .Name }} {{ .Version }}!

# farewell: "Goodbye, I hope you enjoyed it!"

# Defaults for 'pipseed generate' and '-g' in the shell
generate:
  count: 10
  format: json        # json, csv, sql or yaml
  table: data         # SQL table name
  pretty: false
  seed: 0             # 0 picks a random seed
  # Output path template (.Type, .Format, .Count, .Table); empty writes to stdout
  # output: "seeds/{{ .Type }}.{{ .Format }}"

log:
  level: warn
  # file: pipseed.log
  # max_size_mb: 10
  # max_backups: 3
`

// Init creates a sample .pipseed.yml config file in Dir or the global config
func Init(params InitParams) error {
	var configPath string

	if params.Global {
		globalPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return derrors.NewConfigurationError("", "failed to get global config path", err)
		}
		configPath = globalPath

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return derrors.NewConfigurationError(configPath, "failed to create config directory", err)
		}
	} else {
		dir := params.Dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			dir = wd
		}
		configPath = filepath.Join(dir, config.SupportedConfigNames[0])
	}

	if _, err := os.Stat(configPath); err == nil {
		return derrors.NewAlreadyExistsError(configPath, fmt.Sprintf("config file already exists: %s", configPath))
	}

	if err := os.WriteFile(configPath, []byte(sampleConfig), 0644); err != nil {
		return derrors.NewConfigurationError(configPath, "failed to create config file", err)
	}

	if params.Global {
		_, _ = fmt.Fprintf(params.Out, "Created global config: %s\n", configPath)
		_, _ = fmt.Fprintln(params.Out, "\nThe global config is loaded in every directory, before any local .pipseed.yml.")
	} else {
		_, _ = fmt.Fprintf(params.Out, "Created sample config: %s\n", configPath)
		_, _ = fmt.Fprintln(params.Out, "\nNext steps:")
		_, _ = fmt.Fprintln(params.Out, "  1. Edit the config file to suit your needs")
		_, _ = fmt.Fprintln(params.Out, "  2. Run 'pipseed validate' to check it")
	}

	return nil
}
