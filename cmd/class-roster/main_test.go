package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Run("prod is JSON at info", func(t *testing.T) {
		var buf bytes.Buffer
		log := setupLogger("prod", &buf)
		log.Debug("hidden")
		log.Info("shown")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "shown", rec["msg"])
	})

	t.Run("dev is text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		setupLogger("dev", &buf).Debug("visible")
		assert.True(t, strings.Contains(buf.String(), "msg=visible"))
	})
}
