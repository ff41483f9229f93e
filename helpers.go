package helpers

import (
	"github.com/neuronlabs/helpers/config"
	"github.com/neuronlabs/helpers/log"
	"github.com/neuronlabs/helpers/namer"
	"github.com/neuronlabs/helpers/str"
)

// Helpers is the configured set of the case converter and the naming convention.
type Helpers struct {
	converter *str.Converter
	namer     namer.Namer
}

// New creates new Helpers for provided config. If the 'cfg' is nil the default config is used.
// The config log level is set for the default logger.
func New(cfg *config.Helpers) (*Helpers, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		if err := log.SetLevel(log.ParseLevel(cfg.LogLevel)); err != nil {
			return nil, err
		}
	}

	converter := newConverter(cfg.Case)
	convention := cfg.NamingConvention
	if convention == "" {
		convention = namer.ConventionSnake
	}
	n, err := namer.ConventionNamer(convention, converter)
	if err != nil {
		return nil, err
	}
	log.Debugf("Helpers created with naming convention: '%s'", convention)
	return &Helpers{converter: converter, namer: n}, nil
}

// Converter gets the configured case converter.
func (h *Helpers) Converter() *str.Converter {
	return h.converter
}

// Camelize camelizes the 'text' with the configured case settings.
func (h *Helpers) Camelize(text string) string {
	return h.converter.Camelize(text)
}

// Uncamelize uncamelizes the 'text' with the configured delimiter.
func (h *Helpers) Uncamelize(text string) string {
	return h.converter.Uncamelize(text)
}

// Name formats the 'raw' name with the configured naming convention.
func (h *Helpers) Name(raw string) string {
	return h.namer(raw)
}

// Collection gets the plural collection name for the model 'name'.
func (h *Helpers) Collection(name string) string {
	return namer.Collection(h.namer, name)
}

// newConverter creates the case converter for provided config.
// A nil config results in the default converter.
func newConverter(cfg *config.Case) *str.Converter {
	if cfg == nil {
		return str.DefaultConverter()
	}
	return &str.Converter{
		Delimiters:     cfg.Delimiters,
		Delimiter:      cfg.Delimiter,
		LowercaseFirst: cfg.LowercaseFirst,
		NormalizeCase:  cfg.NormalizeCase,
	}
}
