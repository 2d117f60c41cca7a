// Package storage implements the image-store collaborator on the local
// filesystem: bytes in, public URL out.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"eventboard/internal/domain"
)

// thumbWidth is the width of the card-sized variant written next to each
// original (height keeps the aspect ratio).
const thumbWidth = 480

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type localStore struct {
	baseDir string
	baseURL string
}

// NewLocalStore returns an ImageStore writing under baseDir and returning
// URLs rooted at baseURL (e.g. "http://localhost:8080/uploads").
func NewLocalStore(baseDir, baseURL string) (domain.ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *localStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	// Decode to confirm the payload really is an image before writing
	// anything; webp is stored as-is since imaging cannot decode it.
	var img image.Image
	if contentType != "image/webp" {
		var err error
		img, err = imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("decode image: %w", err)
		}
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	if img != nil {
		thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
		thumbPath := filepath.Join(s.baseDir, thumbName(name))
		if err := imaging.Save(thumb, thumbPath); err != nil {
			// The original is already stored; a missing thumbnail only
			// degrades card rendering.
			os.Remove(thumbPath)
		}
	}

	return s.baseURL + "/" + name, nil
}

// thumbName derives the thumbnail filename: "<key>_card<ext>".
func thumbName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_card" + ext
}
