package log

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/helpers/errors"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	logger         unilogger.LeveledLogger
	currentLevel   = LINFO
	debugLeveled   unilogger.DebugLeveledLogger
	isDebugLeveled bool
)

// subLogger is implemented by the loggers that can create their own sub loggers.
type subLogger interface {
	SubLogger() unilogger.LeveledLogger
}

// levelGetter is implemented by the loggers that expose their current level.
type levelGetter interface {
	GetLevel() unilogger.Level
}

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// SetLogger sets the 'log' as the current logger.
func SetLogger(log unilogger.LeveledLogger) {
	logger = log
	if log == nil {
		debugLeveled, isDebugLeveled = nil, false
		return
	}

	if lvlSetter, ok := log.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
	debugLeveled, isDebugLeveled = log.(unilogger.DebugLeveledLogger)

	sub, isSubLogger := log.(subLogger)
	for _, m := range modules {
		if m.logger == nil && isSubLogger {
			m.setLogger(sub.SubLogger())
		}
	}
	Debugf("New logger set with level: %s", currentLevel)
}

// Logger returns default logger.
func Logger() unilogger.LeveledLogger {
	return logger
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// ParseLevel parses the level name i.e. 'debug', 'info'.
// Unknown names result in LUNKNOWN.
func ParseLevel(level string) unilogger.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug3":
		return LDEBUG3
	case "debug2":
		return LDEBUG2
	case "debug":
		return LDEBUG
	case "info":
		return LINFO
	case "warning", "warn":
		return LWARNING
	case "error":
		return LERROR
	case "critical":
		return LCRITICAL
	}
	return LUNKNOWN
}

// SetLevel sets the level if possible for the logger.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.NewDet(errors.ClassLoggerUnknownLevel, "can't set unknown logger level. provided level is not valid")
	}
	if level == currentLevel {
		return nil
	}

	currentLevel = level
	if logger == nil {
		return nil
	}

	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.NewDet(errors.ClassLoggerNotImplement, "logger doesn't implement LevelSetter interface")
	}
	lvl.SetLevel(currentLevel)
	return nil
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug3f(format, args...)
	} else if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	if isDebugLeveled {
		debugLeveled.Debug2f(format, args...)
	} else if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug writes the LDEBUG level log.
func Debug(args ...interface{}) {
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf writes the formatted LWARNING level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}
