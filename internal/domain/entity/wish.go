package entity

import (
	"time"
)

// RSVPStatus is the guest's attendance answer. The three values are the only
// ones the board ever writes; anything else is rejected before the write.
type RSVPStatus string

const (
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
	RSVPUncertain    RSVPStatus = "uncertain"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPAttending, RSVPNotAttending, RSVPUncertain:
		return true
	}
	return false
}

// Wish is a guest-authored message on the board. Wishes are append-only:
// once written they are never edited or deleted.
//
// The document ID is carried outside the document body, and Timestamp is
// assigned by the server on write. A zero Timestamp means the server
// acknowledgment is still pending.
type Wish struct {
	ID        string    `json:"id" firestore:"-"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Comment   string    `json:"comment" firestore:"comment"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// RSVP is a guest's attendance response. It is stored independently from any
// Wish submitted in the same action, and is append-only as well.
type RSVP struct {
	ID        string     `json:"id" firestore:"-"`
	UserName  string     `json:"user_name" firestore:"userName"`
	Status    RSVPStatus `json:"rsvp_status" firestore:"rsvpStatus"`
	Timestamp time.Time  `json:"timestamp" firestore:"timestamp"`
}
