package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules = []*ModuleLogger{}

// ModuleLogger is the logger used by the specific helper packages.
// If it has no logger on it's own, it writes with the default logger
// prefixed with the module name.
type ModuleLogger struct {
	Name string

	logger       unilogger.LeveledLogger
	debugLeveled unilogger.DebugLeveledLogger
	levelSetter  unilogger.LevelSetter
	currentLevel unilogger.Level
	hasLevel     bool
}

// NewModuleLogger creates new module logger for given 'name' of the module and an optional 'logger'.
func NewModuleLogger(name string, moduleLogger ...unilogger.LeveledLogger) *ModuleLogger {
	m := &ModuleLogger{Name: name}
	modules = append(modules, m)

	if len(moduleLogger) > 0 {
		m.setLogger(moduleLogger[0])
	} else if sub, ok := logger.(subLogger); ok {
		m.setLogger(sub.SubLogger())
	}
	return m
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	if m.hasLevel {
		return m.currentLevel
	}
	return currentLevel
}

// SetLevel sets the module logger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.currentLevel, m.hasLevel = level, true
	if m.levelSetter != nil {
		m.levelSetter.SetLevel(level)
	}
}

// Debug3f writes the formatted debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	if !m.enabled(LDEBUG3) {
		return
	}
	format = m.prefixed(format)
	switch {
	case m.debugLeveled != nil:
		m.debugLeveled.Debug3f(format, args...)
	case m.logger != nil:
		m.logger.Debugf(format, args...)
	default:
		Debug3f(format, args...)
	}
}

// Debug2f writes the formatted debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	if !m.enabled(LDEBUG2) {
		return
	}
	format = m.prefixed(format)
	switch {
	case m.debugLeveled != nil:
		m.debugLeveled.Debug2f(format, args...)
	case m.logger != nil:
		m.logger.Debugf(format, args...)
	default:
		Debug2f(format, args...)
	}
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	if !m.enabled(LDEBUG) {
		return
	}
	if m.logger != nil {
		m.logger.Debugf(m.prefixed(format), args...)
	} else {
		Debugf(m.prefixed(format), args...)
	}
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	if !m.enabled(LINFO) {
		return
	}
	if m.logger != nil {
		m.logger.Infof(m.prefixed(format), args...)
	} else {
		Infof(m.prefixed(format), args...)
	}
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	if !m.enabled(LWARNING) {
		return
	}
	if m.logger != nil {
		m.logger.Warningf(m.prefixed(format), args...)
	} else {
		Warningf(m.prefixed(format), args...)
	}
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	if !m.enabled(LERROR) {
		return
	}
	if m.logger != nil {
		m.logger.Errorf(m.prefixed(format), args...)
	} else {
		Errorf(m.prefixed(format), args...)
	}
}

// enabled checks the level only for the loggers that can't filter it on their own.
func (m *ModuleLogger) enabled(level unilogger.Level) bool {
	if m.levelSetter != nil {
		return true
	}
	current := m.Level()
	return current == LUNKNOWN || level >= current
}

func (m *ModuleLogger) prefixed(format string) string {
	return "[" + m.Name + "] " + format
}

func (m *ModuleLogger) setLogger(l unilogger.LeveledLogger) {
	m.logger = l
	m.debugLeveled, _ = l.(unilogger.DebugLeveledLogger)
	m.levelSetter, _ = l.(unilogger.LevelSetter)
	if getter, ok := l.(levelGetter); ok {
		m.currentLevel, m.hasLevel = getter.GetLevel(), true
	}
}
