package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 600, 400))
	for x := 0; x < 600; x++ {
		for y := 0; y < 400; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLocalStore_Upload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), pngBytes(t), "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	_, err = os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)

	// Card-sized variant is written next to the original.
	_, err = os.Stat(filepath.Join(dir, thumbName(name)))
	require.NoError(t, err)
}

func TestLocalStore_UploadRejectsNonImagePayload(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), []byte("definitely not a png"), "image/png")
	require.Error(t, err)
}

func TestLocalStore_UploadRejectsUnknownContentType(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), pngBytes(t), "application/pdf")
	require.Error(t, err)
}
