package dbmysql

import (
	"time"
)

// Relationship is an edge in the social graph. Connection edges walk the
// pending → accepted/rejected/cancelled state machine; follow and block edges
// exist unconditionally and are stored as accepted. Version guards concurrent
// status transitions: exactly one of two racing updates wins.
//
// PairLow/PairHigh form the canonical edge key behind the unique index.
// Connection edges store the unordered pair (min, max), so two reciprocal
// requests collide on the index and at most one connection record can exist
// per pair no matter who requested first. Follow and block edges keep their
// direction (PairLow = from, PairHigh = to), which makes the same index a
// directed-uniqueness constraint for them. FromID/ToID always preserve the
// actual direction: requester → target.
type Relationship struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PairLow     uint64     `gorm:"column:pair_low;not null;index:idx_edge,unique" json:"-"`
	PairHigh    uint64     `gorm:"column:pair_high;not null;index:idx_edge,unique" json:"-"`
	Kind        string     `gorm:"column:kind;type:enum('connection','follow','block');not null;index:idx_edge,unique" json:"kind"`
	FromID      uint64     `gorm:"column:from_id;not null;index" json:"from_id"`
	ToID        uint64     `gorm:"column:to_id;not null;index" json:"to_id"`
	Status      string     `gorm:"column:status;type:enum('pending','accepted','rejected','cancelled');default:'pending'" json:"status"`
	Version     uint64     `gorm:"column:version;default:1" json:"-"`
	RequestedAt time.Time  `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	AcceptedAt  *time.Time `gorm:"column:accepted_at" json:"accepted_at,omitempty"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
