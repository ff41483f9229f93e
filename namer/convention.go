package namer

import (
	"github.com/neuronlabs/helpers/errors"
	"github.com/neuronlabs/helpers/factory"
	"github.com/neuronlabs/helpers/log"
	"github.com/neuronlabs/helpers/str"
)

var logger = log.NewModuleLogger("namer")

// Naming convention names.
const (
	ConventionCamel      = "camel"
	ConventionLowerCamel = "lowercamel"
	ConventionSnake      = "snake"
	ConventionKebab      = "kebab"
	ConventionCamelize   = "camelize"
	ConventionUncamelize = "uncamelize"
	ConventionTitle      = "title"
)

// Conventions is the factory of the naming convention Namers.
// The 'camelize' and 'uncamelize' constructors takes an optional *str.Converter argument.
var Conventions = factory.New("naming conventions", []factory.Service{
	{Key: ConventionCamel, New: staticNamer(NamingCamel)},
	{Key: ConventionLowerCamel, New: staticNamer(NamingLowerCamel)},
	{Key: ConventionSnake, New: staticNamer(NamingSnake)},
	{Key: ConventionKebab, New: staticNamer(NamingKebab)},
	{Key: ConventionCamelize, New: func(args ...interface{}) (interface{}, error) {
		return Namer(converterArg(args).Camelize), nil
	}},
	{Key: ConventionUncamelize, New: func(args ...interface{}) (interface{}, error) {
		return Namer(converterArg(args).Uncamelize), nil
	}},
	{Key: ConventionTitle, New: staticNamer(NamingTitle)},
})

// ConventionNamer gets the Namer for given naming 'convention'.
// The 'conv' converter is used by the 'camelize' and 'uncamelize' conventions,
// if nil the default converter is used.
func ConventionNamer(convention string, conv *str.Converter) (Namer, error) {
	instance, err := Conventions.NewInstance(convention, conv)
	if err != nil {
		if factory.IsNotRegistered(err) {
			logger.Debugf("Unknown naming convention: '%s'", convention)
			return nil, errors.NewDetf(errors.ClassNamerUnknownConvention, "unknown naming convention: '%s'", convention).WithCause(err)
		}
		return nil, err
	}
	return instance.(Namer), nil
}

func staticNamer(n Namer) factory.Constructor {
	return func(...interface{}) (interface{}, error) {
		return n, nil
	}
}

func converterArg(args []interface{}) *str.Converter {
	if len(args) > 0 {
		if conv, ok := args[0].(*str.Converter); ok && conv != nil {
			return conv
		}
	}
	return str.DefaultConverter()
}
