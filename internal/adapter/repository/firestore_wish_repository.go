package repository

import (
	"context"
	"sort"
	"sync"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/internal/domain/repository"
	"wedding-invite/pkg/errors"
	"wedding-invite/pkg/logger"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const wishesCollection = "wishes"

type firestoreWishRepository struct {
	client *firestore.Client
}

func NewFirestoreWishRepository(client *firestore.Client) repository.WishRepository {
	return &firestoreWishRepository{client: client}
}

func (r *firestoreWishRepository) query() firestore.Query {
	return r.client.Collection(wishesCollection).OrderBy("timestamp", firestore.Desc)
}

func (r *firestoreWishRepository) List(ctx context.Context) ([]entity.Wish, error) {
	docs, err := r.query().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to load wishes", err)
	}
	return decodeWishes(docs), nil
}

func (r *firestoreWishRepository) Subscribe(ctx context.Context) (<-chan repository.WishSnapshot, func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	it := r.query().Snapshots(ctx)
	ch := make(chan repository.WishSnapshot, 1)

	go func() {
		defer close(ch)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					return
				}
				logger.Error("Wish subscription failed: %v", err)
				select {
				case ch <- repository.WishSnapshot{Err: errors.Internal("Failed to receive wishes", err)}:
				case <-ctx.Done():
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read wish snapshot: %v", err)
				select {
				case ch <- repository.WishSnapshot{Err: errors.Internal("Failed to receive wishes", err)}:
				case <-ctx.Done():
				}
				return
			}

			select {
			case ch <- repository.WishSnapshot{Wishes: decodeWishes(docs)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(cancel)
	}

	return ch, stop, nil
}

func (r *firestoreWishRepository) Append(ctx context.Context, userName, comment string) error {
	_, _, err := r.client.Collection(wishesCollection).Add(ctx, map[string]interface{}{
		"userName":  userName,
		"comment":   comment,
		"timestamp": firestore.ServerTimestamp,
	})
	if err != nil {
		return errors.Internal("Failed to save wish", err)
	}
	return nil
}

func decodeWishes(docs []*firestore.DocumentSnapshot) []entity.Wish {
	wishes := make([]entity.Wish, 0, len(docs))
	for _, doc := range docs {
		var w entity.Wish
		if err := doc.DataTo(&w); err != nil {
			logger.Warn("Skipping malformed wish %s: %v", doc.Ref.ID, err)
			continue
		}
		w.ID = doc.Ref.ID
		wishes = append(wishes, w)
	}

	sortWishes(wishes)
	return wishes
}

// sortWishes orders newest first. The query orders by timestamp only; equal
// timestamps get a deterministic secondary order by document ID, and a zero
// timestamp (server write still pending) sorts after every concrete time.
func sortWishes(wishes []entity.Wish) {
	sort.SliceStable(wishes, func(i, j int) bool {
		if !wishes[i].Timestamp.Equal(wishes[j].Timestamp) {
			return wishes[i].Timestamp.After(wishes[j].Timestamp)
		}
		return wishes[i].ID < wishes[j].ID
	})
}
