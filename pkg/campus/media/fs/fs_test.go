package fs

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
	s, err := New(t.TempDir())
	require.NoError(t, err)

	key, err := media.NewKey("image/gif")
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, key, "image/gif", strings.NewReader("GIF89a....")))

	rc, obj, err := s.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, "GIF89a....", string(data))
	assert.Equal(t, "image/gif", obj.ContentType)
	assert.Equal(t, int64(10), obj.Size)

	require.NoError(t, s.Delete(ctx, key))
	_, _, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, media.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, key), media.ErrNotFound)
}

func TestStore_RejectsForeignKeys(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	err = s.Put(context.Background(), "../escape.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, media.ErrInvalidKey)

	_, _, err = s.Get(context.Background(), "images/../../etc/passwd")
	assert.ErrorIs(t, err, media.ErrInvalidKey)
}

func TestNew_RequiresBaseDir(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
