package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/logger"
)

// Env holds what every command needs once flags are known.
type Env struct {
	Config *config.Config
	Logger *logger.Logger
	Dir    string
}

// BootstrapParams contains parameters for Bootstrap
type BootstrapParams struct {
	Dir        string // working directory, current one when empty
	ConfigPath string // explicit config file, skips discovery
	LogLevel   string // overrides the configured level when set
	LogOutput  io.Writer
}

// Bootstrap loads the configuration and builds the logger.
func Bootstrap(params BootstrapParams) (*Env, error) {
	dir := params.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = wd
	}

	cfg, err := config.New().Resolve(dir, params.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if params.LogLevel != "" {
		level = params.LogLevel
	}

	log := logger.NewWithOptions(logger.Options{
		Level:      level,
		Output:     params.LogOutput,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	log.Debug().
		Str("dir", dir).
		Strs("sources", cfg.Sources).
		Str("log_level", level).
		Msg("Configuration loaded")

	return &Env{Config: cfg, Logger: log, Dir: dir}, nil
}
