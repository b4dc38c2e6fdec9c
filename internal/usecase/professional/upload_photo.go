package professional

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/media"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
)

type UploadPhoto struct {
	repo  directory.ProfessionalRepository
	store storage.ObjectStore
}

// NewUploadPhoto aceita store nil: a foto fica indisponível.
func NewUploadPhoto(repo directory.ProfessionalRepository, store storage.ObjectStore) *UploadPhoto {
	return &UploadPhoto{repo: repo, store: store}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	sess session.Session,
	professionalID uint,
	photo io.Reader,
) (*models.Professional, error) {

	if uc.store == nil {
		return nil, httperr.ErrUnavailable("storage_disabled")
	}

	p, err := get(ctx, uc.repo, sess, professionalID)
	if err != nil {
		return nil, err
	}

	data, err := media.ToWebP(photo, media.PhotoMaxSide)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(
		"organizations/%d/professionals/%d/%s.webp",
		sess.OrganizationID, p.ID, uuid.NewString(),
	)
	url, err := uc.store.Put(ctx, key, data, "image/webp")
	if err != nil {
		return nil, err
	}

	p.PhotoURL = url
	if err := uc.repo.UpdateProfessional(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
