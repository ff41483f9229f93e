package str

// Converter is the case converter with preset defaults.
// It is not modified after creation and is safe for concurrent use.
type Converter struct {
	// Delimiters is the camelize delimiter set.
	Delimiters string
	// Delimiter is the uncamelize delimiter.
	Delimiter string
	// LowercaseFirst lower-cases the first letter of the camelized text.
	LowercaseFirst bool
	// NormalizeCase lower-cases all but the first letter of each camelized word,
	// so that 'CameLiZe' is camelized into 'Camelize'.
	NormalizeCase bool
}

// DefaultConverter creates the case converter with the default delimiters.
func DefaultConverter() *Converter {
	return &Converter{
		Delimiters: DefaultCamelizeDelimiters,
		Delimiter:  DefaultUncamelizeDelimiter,
	}
}

// Camelize camelizes the 'text' with the converter's settings.
func (c *Converter) Camelize(text string) string {
	return camelize(text, c.Delimiters, c.LowercaseFirst, c.NormalizeCase)
}

// Uncamelize uncamelizes the 'text' with the converter's delimiter.
func (c *Converter) Uncamelize(text string) string {
	return Uncamelize(text, c.Delimiter)
}
