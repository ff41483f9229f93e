package errors

// ClassError is the interface used for all errors
// that uses classification system.
type ClassError interface {
	error
	// Class gets current error classification.
	Class() Class
}

// IsClass checks if given error is of given 'class'.
func IsClass(err error, class Class) bool {
	classError, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classError.Class() == class
}
