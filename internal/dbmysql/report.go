package dbmysql

import "time"

// Report is a moderation record filed against a content item. Readable only
// by its author or an admin; the review workflow itself lives outside this core.
type Report struct {
	ReportID   uint64    `gorm:"primaryKey;column:report_id;autoIncrement" json:"report_id"`
	ContentID  uint64    `gorm:"column:content_id;not null;index" json:"content_id"`
	ReporterID uint64    `gorm:"column:reporter_id;not null;index" json:"reporter_id"`
	Reason     string    `gorm:"column:reason;size:255;not null" json:"reason"`
	Status     string    `gorm:"column:status;type:enum('open','reviewed','actioned','dismissed');default:'open'" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
