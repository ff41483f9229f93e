// Package errors provides lightweight error handling and classification primitives.
//
// Each error is classified by a Class composed of the major, minor and index
// subclassifications. The classes are registered by name, so that a Class may be
// printed and compared in logic. The DetailedError is the classified error with
// a unique ID and the operation where it was created.
package errors
