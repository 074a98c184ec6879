package dbmysql

import "time"

// ViewMarker records that a viewer has already counted toward the unique-view
// counter of a content item within one UTC calendar day. The unique index
// makes the first insert per (content, viewer, day) win; a duplicate-key
// insert means the view was already observed this window.
type ViewMarker struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ContentID uint64    `gorm:"column:content_id;not null;uniqueIndex:idx_content_viewer_day"`
	ViewerID  uint64    `gorm:"column:viewer_id;not null;uniqueIndex:idx_content_viewer_day"`
	Day       string    `gorm:"column:day;size:10;not null;uniqueIndex:idx_content_viewer_day"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
