package repository

import (
	"context"

	"wedding-invite/internal/domain/entity"
)

// WishSnapshot is one delivery on a wish subscription: either the full
// ordered list of wishes as of the latest server change, or a terminal
// subscription error. After an error delivery the channel is closed and no
// further snapshots arrive; consumers keep whatever list they last received.
type WishSnapshot struct {
	Wishes []entity.Wish
	Err    error
}

type WishRepository interface {
	// List returns all wishes ordered newest first.
	List(ctx context.Context) ([]entity.Wish, error)

	// Subscribe opens a standing server-push subscription to the wishes
	// collection, newest first. Every server-side change delivers a full
	// snapshot on the returned channel (never a diff). The returned stop
	// function terminates the subscription and is safe to call more than
	// once; the channel is closed when the subscription ends for any reason.
	Subscribe(ctx context.Context) (<-chan WishSnapshot, func(), error)

	// Append creates a new wish with a server-assigned timestamp.
	Append(ctx context.Context, userName, comment string) error
}
