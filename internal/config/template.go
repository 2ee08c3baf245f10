package config

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pipseed/pipseed/internal/derrors"
)

// BannerData is what the banner template can refer to.
type BannerData struct {
	Name    string
	Version string
}

// ParseTemplate parses text as a Go template with the sprig function set.
// Unknown fields are errors rather than "<no value>".
func ParseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, derrors.NewTemplateError(text, "failed to parse "+name+" template", err)
	}
	return tmpl, nil
}

// ExpandTemplate renders text with data.
func ExpandTemplate(name, text string, data any) (string, error) {
	tmpl, err := ParseTemplate(name, text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", derrors.NewTemplateError(text, "failed to render "+name+" template", err)
	}
	return buf.String(), nil
}

// RenderBanner renders the configured banner.
func (c *Config) RenderBanner(version string) (string, error) {
	return ExpandTemplate("banner", c.Banner, BannerData{Name: "PipSeed", Version: version})
}
