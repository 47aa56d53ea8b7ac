package usecase

import (
	"context"
	"io"

	"wedding-invite/internal/domain/entity"
)

type GalleryStorage interface {
	ListMedia(ctx context.Context, limit, offset int) ([]entity.MediaItem, int64, error)
	UploadMedia(ctx context.Context, file io.Reader, contentType string) (string, error)
}
