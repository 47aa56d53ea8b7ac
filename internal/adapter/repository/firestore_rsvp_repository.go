package repository

import (
	"context"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/internal/domain/repository"
	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/logger"
	"wedding-invite/pkg/utils"

	"cloud.google.com/go/firestore"
)

const rsvpCollection = "rsvp"

type firestoreRsvpRepository struct {
	client *firestore.Client
}

func NewFirestoreRsvpRepository(client *firestore.Client) repository.RsvpRepository {
	return &firestoreRsvpRepository{client: client}
}

func (r *firestoreRsvpRepository) Append(ctx context.Context, userName string, status entity.RSVPStatus) error {
	_, _, err := r.client.Collection(rsvpCollection).Add(ctx, map[string]interface{}{
		"userName":   userName,
		"rsvpStatus": string(status),
		"timestamp":  firestore.ServerTimestamp,
	})
	if err != nil {
		return errors.Internal("Failed to save RSVP", err)
	}
	return nil
}

func (r *firestoreRsvpRepository) List(ctx context.Context, limit, offset int) ([]entity.RSVP, int64, error) {
	docs, err := r.client.Collection(rsvpCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to load RSVPs", err)
	}

	all := make([]entity.RSVP, 0, len(docs))
	for _, doc := range docs {
		var rsvp entity.RSVP
		if err := doc.DataTo(&rsvp); err != nil {
			logger.Warn("Skipping malformed RSVP %s: %v", doc.Ref.ID, err)
			continue
		}
		rsvp.ID = doc.Ref.ID
		all = append(all, rsvp)
	}

	total := int64(len(all))
	start, end := utils.SliceWindow(len(all), limit, offset)
	return all[start:end], total, nil
}

func (r *firestoreRsvpRepository) CountByStatus(ctx context.Context) (map[entity.RSVPStatus]int64, error) {
	docs, err := r.client.Collection(rsvpCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to count RSVPs", err)
	}

	counts := map[entity.RSVPStatus]int64{
		entity.RSVPAttending:    0,
		entity.RSVPNotAttending: 0,
		entity.RSVPUncertain:    0,
	}
	for _, doc := range docs {
		var rsvp entity.RSVP
		if err := doc.DataTo(&rsvp); err != nil {
			continue
		}
		counts[rsvp.Status]++
	}
	return counts, nil
}
