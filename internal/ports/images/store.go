package images

import (
	"context"
	"io"
)

// Store guarda imágenes de mascotas y devuelve la referencia que queda en pet.image
// (path público o URL, según el adapter).
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
