package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Identity is an account handle. Email and phone are vault ciphertext blobs,
// opaque to everything outside the vault; EmailHash is the non-reversible
// lookup hash used for exact-match search.
type Identity struct {
	IdentityID  uint64         `gorm:"primaryKey;column:identity_id;autoIncrement" json:"identity_id"`
	Handle      string         `gorm:"column:handle;uniqueIndex;size:50;not null" json:"handle"`
	Status      string         `gorm:"column:status;type:enum('active','deactivated','deleted');default:'active'" json:"status"`
	Admin       bool           `gorm:"column:admin;default:false" json:"-"`
	EmailCipher []byte         `gorm:"column:email_cipher;type:varbinary(512)" json:"-"`
	EmailHash   string         `gorm:"column:email_hash;size:64;index" json:"-"`
	PhoneCipher []byte         `gorm:"column:phone_cipher;type:varbinary(128)" json:"-"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
