package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/helpers/errors"
	"github.com/neuronlabs/helpers/log"
)

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() (*Helpers, error) {
	v := viper.New()
	setDefaults(v)
	return unmarshal(v)
}

// ReadNamedConfig reads the config with the provided 'name' from the given 'paths'.
// If no path is provided the config is searched within the working and 'configs' directories.
func ReadNamedConfig(name string, paths ...string) (*Helpers, error) {
	v := viper.New()
	v.SetConfigName(name)

	if len(paths) == 0 {
		paths = []string{".", "configs"}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewDetf(errors.ClassConfigRead, "reading config: '%s' failed: %v", name, err).WithCause(err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Helpers, error) {
	h := &Helpers{}
	if err := v.Unmarshal(h); err != nil {
		log.Debugf("Unmarshaling Helpers Config failed. %v", err)
		return nil, errors.NewDetf(errors.ClassConfigRead, "unmarshaling config failed: %v", err).WithCause(err)
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"log_level":            "info",
		"naming_convention":    "snake",
		"case.delimiters":      DefaultDelimiters,
		"case.delimiter":       DefaultDelimiter,
		"case.lowercase_first": false,
		"case.normalize_case":  false,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
