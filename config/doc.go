// Package config contains the helpers configuration structures
// and the viper based readers with their default values.
package config
