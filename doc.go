// Package helpers is the root package that gives easy access to the helper subpackages.
// It consists of the following packages:
// - str - the camelize and uncamelize case conversions.
// - factory - the name keyed factories creating new service instances.
// - namer - the naming conventions resolved by their names.
// - config - the helpers configuration and its viper readers.
// - errors - the classified errors used by all helper packages.
// - log - the logging interface for the helper packages.
package helpers
