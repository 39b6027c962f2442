// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test logger setup and component logger creation

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{name: "default_warn", verbosity: 0, wantLevel: zerolog.WarnLevel},
		{name: "v_info", verbosity: 1, wantLevel: zerolog.InfoLevel},
		{name: "vv_debug", verbosity: 2, wantLevel: zerolog.DebugLevel},
		{name: "vvv_trace", verbosity: 3, wantLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	// The returned logger must be usable without further configuration
	assert.NotPanics(t, func() {
		logger := GetLogger("groups.resolver")
		logger.Debug().Msg("component logger smoke test")
	})
}

func TestLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.Contains(t, path, "crategroups")
	assert.Contains(t, path, "crategroups.log")
}
