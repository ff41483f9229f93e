package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/helpers/errors"
)

// Helpers contains general configuration for the helper components.
type Helpers struct {
	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// NamingConvention is the naming convention used by the namer.
	// Allowed values:
	// - camel
	// - lowercamel
	// - snake
	// - kebab
	// - camelize
	// - uncamelize
	// - title
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=camel lowercamel snake kebab camelize uncamelize title"`

	// Case is the case converter configuration.
	Case *Case `mapstructure:"case" validate:"required"`
}

// Case defines the configuration for the case converter.
type Case struct {
	// Delimiters is the set of characters each treated as a word separator while camelizing.
	Delimiters string `mapstructure:"delimiters"`

	// Delimiter is inserted between the words while uncamelizing.
	Delimiter string `mapstructure:"delimiter" validate:"required"`

	// LowercaseFirst lower-cases the first letter of the camelized text.
	LowercaseFirst bool `mapstructure:"lowercase_first"`

	// NormalizeCase lower-cases all but the first letter of each camelized word.
	NormalizeCase bool `mapstructure:"normalize_case"`
}

// Validate validates the helpers configuration.
func (h *Helpers) Validate() error {
	if err := validator.New().Struct(h); err != nil {
		return errors.NewDetf(errors.ClassConfigValidation, "invalid helpers config: %v", err).WithCause(err)
	}
	return nil
}
