package namer

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/neuronlabs/helpers/str"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_model'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-model'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseModel'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseModel'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// NamingTitle is a Namer function that converts the 'raw' into the 'Title Case Model'.
func NamingTitle(raw string) string {
	return cases.Title(language.Und).String(str.Uncamelize(raw, " "))
}

// NamingPlural is a Namer function that pluralizes the 'raw' i.e. 'person' into 'people'.
func NamingPlural(raw string) string {
	return inflection.Plural(raw)
}

// Collection gets the plural collection name for the model 'name' formatted with the 'namer'.
func Collection(namer Namer, name string) string {
	return namer(inflection.Plural(name))
}
