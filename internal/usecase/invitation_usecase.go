package usecase

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/logger"
)

type InvitationUseCase struct {
	invitation entity.Invitation
	gallery    GalleryStorage
}

// NewInvitationUseCase loads the invitation content from its JSON file once;
// the content never changes while the server runs.
func NewInvitationUseCase(path string, gallery GalleryStorage) (*InvitationUseCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Internal("Failed to read invitation content", err)
	}

	var invitation entity.Invitation
	if err := json.Unmarshal(data, &invitation); err != nil {
		return nil, errors.Internal("Failed to parse invitation content", err)
	}

	logger.Info("Loaded invitation content for %s & %s from %s",
		invitation.GroomName, invitation.BrideName, path)

	return &InvitationUseCase{
		invitation: invitation,
		gallery:    gallery,
	}, nil
}

func (u *InvitationUseCase) Invitation() entity.Invitation {
	return u.invitation
}

func (u *InvitationUseCase) Gallery(ctx context.Context, limit, offset int) ([]entity.MediaItem, int64, error) {
	return u.gallery.ListMedia(ctx, limit, offset)
}

func (u *InvitationUseCase) UploadMedia(ctx context.Context, file io.Reader, contentType string) (string, error) {
	return u.gallery.UploadMedia(ctx, file, contentType)
}
