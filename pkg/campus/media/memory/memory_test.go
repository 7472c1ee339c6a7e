package memory

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus/media"
)

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Put(ctx, "images/a.png", "image/png", strings.NewReader("png-bytes")))

	rc, obj, err := s.Get(ctx, "images/a.png")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(9), obj.Size)

	require.NoError(t, s.Delete(ctx, "images/a.png"))
	_, _, err = s.Get(ctx, "images/a.png")
	assert.ErrorIs(t, err, media.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "images/a.png"), media.ErrNotFound)
}
