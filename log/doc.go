// Package log contains the default helpers logger with it's module subcomponents.
// It wraps the 'github.com/neuronlabs/uni-logger' leveled loggers, so that any
// third-party logger that implements one of its interfaces might be used.
//
// Nothing is logged until the logger is set with Default, New or SetLogger.
// The module loggers allows to set different logger instance or level for
// given helper package i.e. 'factory' or 'namer'.
package log
