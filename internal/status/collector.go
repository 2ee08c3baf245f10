// Package status provides status information collection and display for PipSeed.
package status

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/seed"
	"github.com/pipseed/pipseed/pkg/version"
)

// CollectParams contains parameters for Collect
type CollectParams struct {
	Dir            string
	ExplicitConfig string
	Config         *config.Config
}

// Collect gathers the status of the configuration resolved for Dir.
func Collect(params CollectParams) *Data {
	data := &Data{
		CurrentDir:  params.Dir,
		Version:     version.Version,
		ConfigFiles: make([]ConfigFile, 0, 2),
		Generate:    params.Config.Generate,
		Log:         params.Config.Log,
	}

	loaded := func(path string) bool {
		return slices.Contains(params.Config.Sources, path)
	}

	if params.ExplicitConfig != "" {
		data.ConfigFiles = append(data.ConfigFiles, ConfigFile{
			Path:   params.ExplicitConfig,
			Scope:  "explicit",
			Exists: fileExists(params.ExplicitConfig),
			Loaded: loaded(params.ExplicitConfig),
		})
	} else {
		if globalPath, err := config.GetGlobalConfigPath(); err == nil {
			data.ConfigFiles = append(data.ConfigFiles, ConfigFile{
				Path:   globalPath,
				Scope:  "global",
				Exists: fileExists(globalPath),
				Loaded: loaded(globalPath),
			})
		}

		local := filepath.Join(params.Dir, config.SupportedConfigNames[0])
		if found, ok := config.FindLocalConfig(params.Dir); ok {
			local = found
		}
		data.ConfigFiles = append(data.ConfigFiles, ConfigFile{
			Path:   local,
			Scope:  "local",
			Exists: fileExists(local),
			Loaded: loaded(local),
		})
	}

	for _, spec := range seed.Specs() {
		data.Types = append(data.Types, TypeInfo{Name: string(spec.Type), Fields: len(spec.Fields)})
	}

	return data
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
