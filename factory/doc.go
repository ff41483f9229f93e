// Package factory is the package that defines the name keyed factories.
// A factory maps the unique service key to the constructor responsible
// for creating new instances of given service.
// The registry is set once while creating the factory, where the built-in
// services might be overwritten or extended by the caller provided ones.
// After that the factory is read-only and safe for concurrent use.
package factory
