package log

import (
	"bytes"
	"testing"

	"github.com/neuronlabs/uni-logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/helpers/errors"
)

// TestSetLevel tests the SetLevel function.
func TestSetLevel(t *testing.T) {
	defer SetLogger(nil)
	prev := Level()
	defer func() { currentLevel = prev }()

	t.Run("Unknown", func(t *testing.T) {
		err := SetLevel(LUNKNOWN)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, errors.ClassLoggerUnknownLevel))
	})

	t.Run("NoLogger", func(t *testing.T) {
		SetLogger(nil)
		require.NoError(t, SetLevel(LWARNING))
		assert.Equal(t, LWARNING, Level())
	})

	t.Run("Basic", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "", 0)
		require.NoError(t, SetLevel(LDEBUG))
		assert.Equal(t, LDEBUG, Level())
		assert.NotNil(t, Logger())
	})
}

// TestModuleLogger tests the module logger.
func TestModuleLogger(t *testing.T) {
	var buf bytes.Buffer
	m := NewModuleLogger("testing", unilogger.NewBasicLogger(&buf, "", 0))
	m.SetLevel(LINFO)
	assert.Equal(t, LINFO, m.Level())

	m.Infof("registered: '%s'", "one")
	assert.Contains(t, buf.String(), "[testing] registered: 'one'")
}

// TestParseLevel tests the level parsing.
func TestParseLevel(t *testing.T) {
	levels := map[string]unilogger.Level{
		"debug3":   LDEBUG3,
		"debug2":   LDEBUG2,
		"debug":    LDEBUG,
		"info":     LINFO,
		"INFO":     LINFO,
		"warning":  LWARNING,
		"error":    LERROR,
		"critical": LCRITICAL,
		"verbose":  LUNKNOWN,
	}
	for name, expected := range levels {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				require.Equal(t, expected, ParseLevel(name))
			}
		})
	}
}

type leveledSubLogger struct {
	unilogger.LeveledLogger
	level unilogger.Level
}

func (l *leveledSubLogger) GetLevel() unilogger.Level {
	return l.level
}

func (l *leveledSubLogger) SubLogger() unilogger.LeveledLogger {
	return &leveledSubLogger{LeveledLogger: l.LeveledLogger, level: l.level}
}

// TestSubLogger tests setting the module loggers from the default sub logger.
func TestSubLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(&leveledSubLogger{LeveledLogger: unilogger.NewBasicLogger(&buf, "", 0), level: LWARNING})

	m := NewModuleLogger("sub")
	require.NotNil(t, m.logger)
	assert.Equal(t, LWARNING, m.Level())

	m.Warningf("constructor missing: '%s'", "four")
	assert.Contains(t, buf.String(), "[sub] constructor missing: 'four'")
}
