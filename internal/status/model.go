package status

import (
	"github.com/pipseed/pipseed/internal/config"
)

// Data contains all the information to display in status
type Data struct {
	// Header
	CurrentDir string
	Version    string

	// Configuration layers, lowest priority first
	ConfigFiles []ConfigFile

	// Effective settings
	Generate config.GenerateConfig
	Log      config.LogConfig

	// Data types that can be generated
	Types []TypeInfo
}

// ConfigFile describes one candidate configuration layer.
type ConfigFile struct {
	Path   string
	Scope  string // global, local or explicit
	Exists bool
	Loaded bool
}

// TypeInfo summarizes a data type.
type TypeInfo struct {
	Name   string
	Fields int
}
