package logger_test

import (
	"bytes"
	"testing"

	"github.com/arielf-camacho/cold-stream/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	// Given
	cfg := logger.Config{Level: "DEBUG"}

	// When
	cfg.ApplyDefaults()

	// Then
	assert.Equal(t, logger.Config{
		Level:  "debug",
		Format: logger.FormatConsole,
		Output: "stderr",
	}, cfg)
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		cfg       logger.Config
		contains  []string
		debugSeen bool
	}{
		"json-at-info-drops-debug": {
			cfg:      logger.Config{Level: "info", Format: logger.FormatJSON},
			contains: []string{`"level":"info"`, `"message":"hello"`, `"component":"test"`},
		},
		"json-at-debug-keeps-debug": {
			cfg:       logger.Config{Level: "debug", Format: logger.FormatJSON},
			contains:  []string{`"level":"debug"`, `"message":"details"`},
			debugSeen: true,
		},
		"console": {
			cfg:      logger.Config{Level: "info", Format: logger.FormatConsole, NoColor: true},
			contains: []string{"INF", "hello", "component:"},
		},
		"invalid-level-falls-back-to-info": {
			cfg:      logger.Config{Level: "loud", Format: logger.FormatJSON},
			contains: []string{`"level":"info"`},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			var buf bytes.Buffer
			log := logger.NewWithWriter(c.cfg, &buf)

			// When
			log.Debug().Msg("details")
			log.Info().Str(logger.FieldComponent, "test").Msg("hello")

			// Then
			for _, s := range c.contains {
				assert.Contains(t, buf.String(), s)
			}
			assert.Equal(t, c.debugSeen, bytes.Contains(buf.Bytes(), []byte("details")))
		})
	}
}
