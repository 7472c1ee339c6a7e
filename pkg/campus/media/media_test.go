package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	key, err := NewKey("image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "images/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.True(t, ValidKey(key))

	_, err = NewKey("application/pdf")
	assert.Error(t, err)
}

func TestValidKey(t *testing.T) {
	assert.False(t, ValidKey("../etc/passwd"))
	assert.False(t, ValidKey("images/../../secret.png"))
	assert.False(t, ValidKey("images/not-a-uuid.png"))
	assert.True(t, ValidKey("images/123e4567-e89b-12d3-a456-426614174000.jpg"))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("image/jpeg"))
	assert.True(t, IsImage("image/webp"))
	assert.False(t, IsImage("text/html; charset=utf-8"))
}
