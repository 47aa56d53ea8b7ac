package repository

import (
	"context"

	"wedding-invite/internal/domain/entity"
)

type RsvpRepository interface {
	// Append creates a new RSVP with a server-assigned timestamp. The guest
	// flow only ever writes this collection; reads below exist for the hosts.
	Append(ctx context.Context, userName string, status entity.RSVPStatus) error

	// List returns RSVPs ordered newest first.
	List(ctx context.Context, limit, offset int) ([]entity.RSVP, int64, error)

	// CountByStatus returns the number of RSVPs per attendance answer.
	CountByStatus(ctx context.Context) (map[entity.RSVPStatus]int64, error)
}
