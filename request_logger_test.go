package client

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debugf("dropped %d", 1)
	logger.Warnf("page %d failed\n", 2)
	logger.Errorf("broken")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"message":"page 2 failed"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"component":"joplin-client"`)
}
