package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/internal/domain/repository"
	"wedding-invite/pkg/errors"

	"github.com/stretchr/testify/assert"
)

type appendedWish struct {
	userName string
	comment  string
}

type fakeWishRepo struct {
	mu        sync.Mutex
	appends   []appendedWish
	appendErr error
	snapshots chan repository.WishSnapshot
	stopCount int

	appendStarted chan struct{}
	appendRelease chan struct{}
}

func newFakeWishRepo() *fakeWishRepo {
	return &fakeWishRepo{snapshots: make(chan repository.WishSnapshot, 4)}
}

func (f *fakeWishRepo) List(ctx context.Context) ([]entity.Wish, error) {
	return nil, nil
}

func (f *fakeWishRepo) Subscribe(ctx context.Context) (<-chan repository.WishSnapshot, func(), error) {
	return f.snapshots, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.stopCount++
	}, nil
}

func (f *fakeWishRepo) Append(ctx context.Context, userName, comment string) error {
	if f.appendStarted != nil {
		f.appendStarted <- struct{}{}
		<-f.appendRelease
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends = append(f.appends, appendedWish{userName: userName, comment: comment})
	return f.appendErr
}

func (f *fakeWishRepo) appendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appends)
}

type appendedRsvp struct {
	userName string
	status   entity.RSVPStatus
}

type fakeRsvpRepo struct {
	mu        sync.Mutex
	appends   []appendedRsvp
	appendErr error
	rsvps     []entity.RSVP
	counts    map[entity.RSVPStatus]int64
}

func (f *fakeRsvpRepo) Append(ctx context.Context, userName string, status entity.RSVPStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends = append(f.appends, appendedRsvp{userName: userName, status: status})
	return f.appendErr
}

func (f *fakeRsvpRepo) List(ctx context.Context, limit, offset int) ([]entity.RSVP, int64, error) {
	return f.rsvps, int64(len(f.rsvps)), nil
}

func (f *fakeRsvpRepo) CountByStatus(ctx context.Context) (map[entity.RSVPStatus]int64, error) {
	return f.counts, nil
}

func (f *fakeRsvpRepo) appendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appends)
}

func newTestBoard(wishRepo *fakeWishRepo, rsvpRepo *fakeRsvpRepo) *Board {
	return NewBoard(NewGuestbookUseCase(wishRepo, rsvpRepo), wishRepo)
}

func someWishes(n int) []entity.Wish {
	wishes := make([]entity.Wish, n)
	for i := range wishes {
		wishes[i] = entity.Wish{ID: string(rune('a' + i)), UserName: "guest", Comment: "hi"}
	}
	return wishes
}

type boardState struct {
	index      int
	total      int
	submitting bool
	lastError  string
	feedError  string
	wishDone   bool
	rsvpDone   bool
	draft      Draft
}

func stateOf(b *Board) boardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return boardState{
		index:      b.index,
		total:      len(b.wishes),
		submitting: b.submitting,
		lastError:  b.lastError,
		feedError:  b.feedError,
		wishDone:   b.wishDone,
		rsvpDone:   b.rsvpDone,
		draft:      b.draft,
	}
}

func TestCarouselWrapsBothDirections(t *testing.T) {
	b := newTestBoard(newFakeWishRepo(), &fakeRsvpRepo{})
	defer b.Close()

	b.applySnapshot(someWishes(4))

	// A full lap forward returns to the start.
	for i := 0; i < 4; i++ {
		b.Advance(1)
	}
	assert.Equal(t, 0, stateOf(b).index)

	// Backwards from zero wraps to the end.
	b.Advance(-1)
	assert.Equal(t, 3, stateOf(b).index)
}

func TestAdvanceOnEmptyListIsNoop(t *testing.T) {
	b := newTestBoard(newFakeWishRepo(), &fakeRsvpRepo{})
	defer b.Close()

	assert.NotPanics(t, func() {
		b.Advance(1)
		b.Advance(-1)
	})
	assert.Equal(t, 0, stateOf(b).index)

	select {
	case ev := <-b.Events():
		t.Fatalf("unexpected event %q on empty board", ev.Type)
	default:
	}
}

func TestSnapshotClampsCarouselIndex(t *testing.T) {
	b := newTestBoard(newFakeWishRepo(), &fakeRsvpRepo{})
	defer b.Close()

	b.applySnapshot(someWishes(5))
	for i := 0; i < 4; i++ {
		b.Advance(1)
	}
	assert.Equal(t, 4, stateOf(b).index)

	b.applySnapshot(someWishes(2))
	assert.Equal(t, 0, stateOf(b).index)
}

func TestSubmitWithoutNameWritesNothing(t *testing.T) {
	wishRepo := newFakeWishRepo()
	rsvpRepo := &fakeRsvpRepo{}
	b := newTestBoard(wishRepo, rsvpRepo)
	defer b.Close()

	b.SetDraft(Draft{Comment: "hello"})
	b.Submit(context.Background())

	st := stateOf(b)
	assert.Equal(t, 0, wishRepo.appendCount())
	assert.Equal(t, 0, rsvpRepo.appendCount())
	assert.NotEmpty(t, st.lastError)
	assert.False(t, st.submitting)
}

func TestSubmitWithNeitherCommentNorRsvpWritesNothing(t *testing.T) {
	wishRepo := newFakeWishRepo()
	rsvpRepo := &fakeRsvpRepo{}
	b := newTestBoard(wishRepo, rsvpRepo)
	defer b.Close()

	b.SetDraft(Draft{UserName: "A"})
	b.Submit(context.Background())

	st := stateOf(b)
	assert.Equal(t, 0, wishRepo.appendCount())
	assert.Equal(t, 0, rsvpRepo.appendCount())
	assert.NotEmpty(t, st.lastError)
}

func TestSubmitWishOnly(t *testing.T) {
	wishRepo := newFakeWishRepo()
	rsvpRepo := &fakeRsvpRepo{}
	b := newTestBoard(wishRepo, rsvpRepo)
	defer b.Close()

	b.SetDraft(Draft{UserName: "A", Comment: "Happy!"})
	b.Submit(context.Background())

	assert.Equal(t, []appendedWish{{userName: "A", comment: "Happy!"}}, wishRepo.appends)
	assert.Equal(t, 0, rsvpRepo.appendCount())

	st := stateOf(b)
	assert.True(t, st.wishDone)
	assert.False(t, st.rsvpDone)
	assert.Empty(t, st.lastError)
	assert.Empty(t, st.draft.Comment)
	assert.Empty(t, st.draft.UserName)
}

func TestSubmitRsvpOnly(t *testing.T) {
	wishRepo := newFakeWishRepo()
	rsvpRepo := &fakeRsvpRepo{}
	b := newTestBoard(wishRepo, rsvpRepo)
	defer b.Close()

	b.SetDraft(Draft{UserName: "A", RsvpStatus: "attending"})
	b.Submit(context.Background())

	assert.Equal(t, 0, wishRepo.appendCount())
	assert.Equal(t, []appendedRsvp{{userName: "A", status: entity.RSVPAttending}}, rsvpRepo.appends)

	st := stateOf(b)
	assert.True(t, st.rsvpDone)
	assert.False(t, st.wishDone)
	assert.Empty(t, st.draft.RsvpStatus)
}

func TestSubmitPartialFailureKeepsFailedHalf(t *testing.T) {
	wishRepo := newFakeWishRepo()
	wishRepo.appendErr = errors.Internal("store down", nil)
	rsvpRepo := &fakeRsvpRepo{}
	b := newTestBoard(wishRepo, rsvpRepo)
	defer b.Close()

	b.SetDraft(Draft{UserName: "A", Comment: "Happy!", RsvpStatus: "attending"})
	b.Submit(context.Background())

	assert.Equal(t, 1, wishRepo.appendCount())
	assert.Equal(t, 1, rsvpRepo.appendCount())

	st := stateOf(b)
	assert.True(t, st.rsvpDone, "the RSVP half succeeded")
	assert.False(t, st.wishDone)
	assert.NotEmpty(t, st.lastError)
	assert.Equal(t, "Happy!", st.draft.Comment, "failed half stays for a retry")
	assert.Equal(t, "A", st.draft.UserName)
	assert.Empty(t, st.draft.RsvpStatus)
	assert.False(t, st.submitting)
}

func TestSecondSubmitWhileInFlightIsNoop(t *testing.T) {
	wishRepo := newFakeWishRepo()
	wishRepo.appendStarted = make(chan struct{})
	wishRepo.appendRelease = make(chan struct{})
	rsvpRepo := &fakeRsvpRepo{}
	b := newTestBoard(wishRepo, rsvpRepo)
	defer b.Close()

	b.SetDraft(Draft{UserName: "A", Comment: "first"})

	done := make(chan struct{})
	go func() {
		b.Submit(context.Background())
		close(done)
	}()
	<-wishRepo.appendStarted

	// The first submission is mid-append; this one must not write.
	b.Submit(context.Background())

	close(wishRepo.appendRelease)
	<-done

	assert.Equal(t, 1, wishRepo.appendCount())
	assert.Equal(t, 0, rsvpRepo.appendCount())
}

func TestSnapshotAfterCloseIsIgnored(t *testing.T) {
	wishRepo := newFakeWishRepo()
	b := newTestBoard(wishRepo, &fakeRsvpRepo{})

	assert.NoError(t, b.Start(context.Background()))

	wishRepo.snapshots <- repository.WishSnapshot{Wishes: someWishes(2)}
	assert.Eventually(t, func() bool {
		return stateOf(b).total == 2
	}, time.Second, 5*time.Millisecond)

	b.Close()
	b.Close() // idempotent

	assert.NotPanics(t, func() {
		wishRepo.snapshots <- repository.WishSnapshot{Wishes: someWishes(5)}
		close(wishRepo.snapshots)
	})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, stateOf(b).total)

	wishRepo.mu.Lock()
	defer wishRepo.mu.Unlock()
	assert.Equal(t, 1, wishRepo.stopCount)
}

func TestSubscriptionErrorKeepsLastWishes(t *testing.T) {
	wishRepo := newFakeWishRepo()
	b := newTestBoard(wishRepo, &fakeRsvpRepo{})
	defer b.Close()

	assert.NoError(t, b.Start(context.Background()))

	wishRepo.snapshots <- repository.WishSnapshot{Wishes: someWishes(3)}
	wishRepo.snapshots <- repository.WishSnapshot{Err: errors.Internal("Failed to receive wishes", nil)}
	close(wishRepo.snapshots)

	assert.Eventually(t, func() bool {
		return stateOf(b).feedError != ""
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, stateOf(b).total, "the last good list keeps rendering")
}

func TestSuccessNoticesClearAfterWindow(t *testing.T) {
	wishRepo := newFakeWishRepo()
	b := newTestBoard(wishRepo, &fakeRsvpRepo{})
	b.noticeWindow = 30 * time.Millisecond
	defer b.Close()

	b.SetDraft(Draft{UserName: "A", Comment: "Happy!"})
	b.Submit(context.Background())
	assert.True(t, stateOf(b).wishDone)

	assert.Eventually(t, func() bool {
		return !stateOf(b).wishDone
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, stateOf(b).lastError, "clearing a notice touches nothing else")
}

func TestSlowConsumerStillGetsNewestWishes(t *testing.T) {
	b := newTestBoard(newFakeWishRepo(), &fakeRsvpRepo{})
	defer b.Close()

	// Nobody reads Events; overflow the buffer, then send one more list.
	for i := 0; i < boardEventBuffer+8; i++ {
		b.applySnapshot(someWishes(2))
	}
	b.applySnapshot(someWishes(7))

	var last *BoardEvent
	for {
		select {
		case ev := <-b.Events():
			if ev.Type == EventWishes {
				last = &ev
			}
			continue
		default:
		}
		break
	}

	// Old events are shed before new ones; the final list survives the flood.
	assert.NotNil(t, last)
	assert.Equal(t, 7, last.Total)
}

func TestAutoAdvanceMovesCarousel(t *testing.T) {
	wishRepo := newFakeWishRepo()
	b := newTestBoard(wishRepo, &fakeRsvpRepo{})
	b.advanceEvery = 20 * time.Millisecond
	defer b.Close()

	b.applySnapshot(someWishes(3))

	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-b.Events():
			if ev.Type == EventCarousel {
				assert.Equal(t, 1, ev.Index)
				return
			}
		case <-timeout:
			t.Fatal("carousel never auto-advanced")
		}
	}
}
