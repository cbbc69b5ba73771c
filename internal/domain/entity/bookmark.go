package entity

import "time"

// Bookmark is a link saved by a single user. OwnerID is stamped from the
// authenticated principal on creation and is immutable afterwards.
type Bookmark struct {
	ID          int64     // Immutable numeric identifier, assigned by the store on creation.
	OwnerID     int64     // The user that exclusively owns this bookmark.
	Title       string    // Display title.
	Link        string    // The bookmarked URL.
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of when this bookmark was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Owner returns the id of the owning user. It satisfies service.Owned so the
// ownership guard can authorize actions without knowing the concrete type.
func (b *Bookmark) Owner() int64 {
	return b.OwnerID
}
