package owlsender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDryRun(t *testing.T) {
	tx, line := NewDryRun(0x12)
	require.True(t, tx.Configured())
	require.NoError(t, tx.Send(1000, 50000))

	assert.Equal(t, "628012E003404CAA0A00004005", tx.Message().String())
	assert.Equal(t, FrameDuration, line.Elapsed())
	assert.False(t, line.Level())
}
