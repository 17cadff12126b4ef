package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDiskStore_StoreAndPath(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store(context.Background(), "photo.png", pngBytes(t, 10, 10))
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	_, err = os.Stat(store.Path(ref))
	assert.NoError(t, err)
}

func TestDiskStore_RejectsNonImage(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Store(context.Background(), "notes.txt", []byte("just text"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestDiskStore_PathIgnoresDirectoryEscapes(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	p := store.Path("../../etc/passwd")
	assert.Equal(t, filepath.Join(dir, "passwd"), p)
}
