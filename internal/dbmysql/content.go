package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Content is an owned, visibility-tagged item. Counters are mutated only by
// the engagement aggregator (atomic column increments); EngagementScore is a
// pure function of the counter tuple, recomputed after every change under the
// Version optimistic guard.
type Content struct {
	ContentID   uint64  `gorm:"primaryKey;column:content_id;autoIncrement" json:"content_id"`
	OwnerID     uint64  `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Kind        string  `gorm:"column:kind;type:enum('post','video','clip');default:'post'" json:"kind"`
	Body        *string `gorm:"column:body;type:text" json:"body,omitempty"`
	Visibility  string  `gorm:"column:visibility;type:enum('public','connections','private');default:'public'" json:"visibility"`
	Views       uint64  `gorm:"column:views;default:0" json:"views"`
	UniqueViews uint64  `gorm:"column:unique_views;default:0" json:"unique_views"`
	Likes       uint64  `gorm:"column:likes;default:0" json:"likes"`
	Comments    uint64  `gorm:"column:comments;default:0" json:"comments"`
	Shares      uint64  `gorm:"column:shares;default:0" json:"shares"`
	Saves       uint64  `gorm:"column:saves;default:0" json:"saves"`

	EngagementScore float64 `gorm:"column:engagement_score;default:0" json:"engagement_score"`
	Version         uint64  `gorm:"column:version;default:1" json:"-"`

	PublishedAt time.Time      `gorm:"column:published_at;autoCreateTime;index" json:"published_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
