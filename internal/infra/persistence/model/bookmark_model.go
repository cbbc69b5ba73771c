package model

import "time"

// BookmarkModel mirrors the 'bookmarks' table. OwnerID references users.id
// and cascades on delete.
type BookmarkModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64  `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	Link        string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}
