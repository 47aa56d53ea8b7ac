package usecase

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"wedding-invite/internal/domain/entity"
	"wedding-invite/internal/domain/repository"
	apperrors "wedding-invite/pkg/errors"
	"wedding-invite/pkg/logger"
)

const (
	defaultAdvanceInterval = 5 * time.Second
	defaultNoticeWindow    = 3 * time.Second
	boardEventBuffer       = 32
)

const (
	EventWishes   = "wishes"
	EventCarousel = "carousel"
	EventStatus   = "status"
)

// BoardEvent is one server-to-client update from a board session.
type BoardEvent struct {
	Type string `json:"type"`

	// EventWishes
	Wishes []entity.Wish `json:"wishes,omitempty"`

	// EventWishes and EventCarousel
	Index int `json:"index"`
	Total int `json:"total"`

	// EventStatus
	Submitting    bool   `json:"submitting,omitempty"`
	Error         string `json:"error,omitempty"`
	FeedError     string `json:"feed_error,omitempty"`
	WishSubmitted bool   `json:"wish_submitted,omitempty"`
	RsvpSubmitted bool   `json:"rsvp_submitted,omitempty"`
}

// Board is the controller for one guest's wishes board session. It owns the
// session's view of the wish list, the carousel position with its auto-advance
// timer, the form draft and the submission lifecycle, and streams state
// changes out on Events.
//
// The wish list is server-driven: it is replaced wholesale on every snapshot
// the subscription delivers and never mutated locally ahead of the server.
// A Board is created per connection and must be closed exactly once when the
// connection goes away; anything arriving after Close is ignored.
type Board struct {
	guestbook *GuestbookUseCase
	wishRepo  repository.WishRepository

	advanceEvery time.Duration
	noticeWindow time.Duration

	mu           sync.Mutex
	wishes       []entity.Wish
	index        int
	draft        Draft
	submitting   bool
	lastError    string
	feedError    string
	wishDone     bool
	rsvpDone     bool
	closed       bool
	advanceTimer *time.Timer
	stop         func()

	events    chan BoardEvent
	closeOnce sync.Once
}

func NewBoard(guestbook *GuestbookUseCase, wishRepo repository.WishRepository) *Board {
	return &Board{
		guestbook:    guestbook,
		wishRepo:     wishRepo,
		advanceEvery: defaultAdvanceInterval,
		noticeWindow: defaultNoticeWindow,
		events:       make(chan BoardEvent, boardEventBuffer),
	}
}

// Start opens the wish subscription. The first snapshot arrives on Events as
// soon as the store delivers the initial load.
func (b *Board) Start(ctx context.Context) error {
	ch, stop, err := b.wishRepo.Subscribe(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		stop()
		return nil
	}
	b.stop = stop
	b.mu.Unlock()

	go func() {
		for snap := range ch {
			if snap.Err != nil {
				b.applyFeedError(snap.Err)
				continue
			}
			b.applySnapshot(snap.Wishes)
		}
	}()

	return nil
}

// Events streams board updates to the session's connection. The channel is
// closed by Close.
func (b *Board) Events() <-chan BoardEvent {
	return b.events
}

// SetDraft replaces the unsaved form input.
func (b *Board) SetDraft(draft Draft) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.draft = draft
}

// Advance moves the carousel one position in the given direction, wrapping
// around the list. It is a no-op while the list is empty.
func (b *Board) Advance(direction int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || len(b.wishes) == 0 {
		return
	}

	n := len(b.wishes)
	b.index = ((b.index+direction)%n + n) % n
	b.rearmLocked()
	b.emitLocked(BoardEvent{Type: EventCarousel, Index: b.index, Total: n})
}

// Submit sends the current draft: a wish when the comment is non-empty, an
// RSVP when an answer was picked. While a submission is in flight further
// calls are no-ops, so a double click never writes twice. Fields that were
// written successfully are cleared from the draft; a failed half stays in the
// draft for a manual retry.
func (b *Board) Submit(ctx context.Context) {
	b.mu.Lock()
	if b.closed || b.submitting {
		b.mu.Unlock()
		return
	}

	draft := b.draft
	b.lastError = ""

	if err := b.guestbook.Validate(draft); err != nil {
		b.lastError = errorMessage(err)
		b.emitStatusLocked()
		b.mu.Unlock()
		return
	}

	b.submitting = true
	b.emitStatusLocked()
	b.mu.Unlock()

	out, err := b.guestbook.Submit(ctx, draft)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false
	if b.closed {
		return
	}
	if err != nil {
		b.lastError = errorMessage(err)
		b.emitStatusLocked()
		return
	}

	if out.WishSubmitted {
		b.draft.Comment = ""
		b.wishDone = true
		b.clearNoticeAfter(&b.wishDone)
	}
	if out.RsvpSubmitted {
		b.draft.RsvpStatus = ""
		b.rsvpDone = true
		b.clearNoticeAfter(&b.rsvpDone)
	}

	if out.Failed() {
		b.lastError = "Failed to send your submission"
	} else {
		b.draft.UserName = ""
	}

	b.emitStatusLocked()
}

// Close tears the session down: it stops the auto-advance timer, cancels the
// wish subscription and closes Events. It is safe to call more than once, and
// late snapshots, timer fires or notice expiries after Close mutate nothing.
func (b *Board) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		if b.advanceTimer != nil {
			b.advanceTimer.Stop()
		}
		stop := b.stop
		b.mu.Unlock()

		if stop != nil {
			stop()
		}
		close(b.events)
	})
}

func (b *Board) applySnapshot(wishes []entity.Wish) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.wishes = wishes
	b.feedError = ""
	if len(wishes) == 0 || b.index >= len(wishes) {
		b.index = 0
	}
	b.rearmLocked()
	b.emitLocked(BoardEvent{
		Type:   EventWishes,
		Wishes: wishes,
		Index:  b.index,
		Total:  len(wishes),
	})
}

func (b *Board) applyFeedError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	// The last good list keeps rendering; only the banner changes.
	b.feedError = errorMessage(err)
	b.emitStatusLocked()
}

// rearmLocked restarts the auto-advance timer. Called with the lock held on
// every change to the list or the carousel position.
func (b *Board) rearmLocked() {
	if b.advanceTimer != nil {
		b.advanceTimer.Stop()
		b.advanceTimer = nil
	}
	if len(b.wishes) == 0 || b.closed {
		return
	}
	b.advanceTimer = time.AfterFunc(b.advanceEvery, func() {
		b.Advance(1)
	})
}

// clearNoticeAfter resets a success flag once its display window ends.
func (b *Board) clearNoticeAfter(flag *bool) {
	time.AfterFunc(b.noticeWindow, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed || !*flag {
			return
		}
		*flag = false
		b.emitStatusLocked()
	})
}

func (b *Board) emitStatusLocked() {
	b.emitLocked(BoardEvent{
		Type:          EventStatus,
		Submitting:    b.submitting,
		Error:         b.lastError,
		FeedError:     b.feedError,
		WishSubmitted: b.wishDone,
		RsvpSubmitted: b.rsvpDone,
		Index:         b.index,
		Total:         len(b.wishes),
	})
}

// emitLocked delivers an event without blocking. When the buffer is full the
// oldest queued event is shed to make room, so a consumer that has fallen
// behind misses intermediate states but always holds the newest one. All
// sends go through here with the lock held, so draining one slot is enough
// for the retry to land.
func (b *Board) emitLocked(ev BoardEvent) {
	select {
	case b.events <- ev:
		return
	default:
	}

	select {
	case old := <-b.events:
		logger.Debug("Shedding stale board event %s: consumer behind", old.Type)
	default:
	}

	select {
	case b.events <- ev:
	default:
	}
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong"
}
