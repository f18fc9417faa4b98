package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file jsh looks for in the config directory.
const ConfigurationName = "config.yaml"

// Prompt coloring modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Configuration holds the user-tunable pieces of the shell.
type Configuration struct {
	// Motd is printed once before the first prompt. Empty means no
	// message.
	Motd string `json:"motd"`

	// Prompt is the banner format; \u, \h and \w expand to the user,
	// host and working directory.
	Prompt string `json:"prompt" validate:"required"`

	// Color switches prompt coloring; auto colors only on a terminal.
	Color string `json:"color" validate:"oneof=auto always never"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
