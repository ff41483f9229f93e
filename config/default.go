package config

const (
	// DefaultDelimiters is the default camelize delimiter set.
	DefaultDelimiters = "-_"
	// DefaultDelimiter is the default uncamelize delimiter.
	DefaultDelimiter = "_"
)

// DefaultCase returns default case converter configuration.
func DefaultCase() *Case {
	return &Case{
		Delimiters: DefaultDelimiters,
		Delimiter:  DefaultDelimiter,
	}
}

// Default returns default helpers configuration.
func Default() *Helpers {
	return &Helpers{
		LogLevel:         "info",
		NamingConvention: "snake",
		Case:             DefaultCase(),
	}
}
