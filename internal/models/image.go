package models

import (
	"time"
)

// Image is a stored gallery image. The bytes live in the remote object
// store; this row only carries metadata plus the public URL and the key
// needed to delete the remote object later.
//
// Deleted/DeletedAt implement the trash bin and are managed explicitly
// rather than through gorm.DeletedAt, because trashed rows must stay
// visible to the trash queries.
type Image struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	URL        string     `gorm:"type:varchar(1024);not null" json:"url"`
	StorageKey string     `gorm:"type:varchar(512)" json:"-"`
	FileType   string     `gorm:"type:varchar(100)" json:"file_type"`
	FileSize   int64      `json:"file_size"`
	UploadTime time.Time  `json:"upload_time"`
	Deleted    bool       `gorm:"not null;default:false" json:"deleted"`
	DeletedAt  *time.Time `json:"deleted_at"`
	UserID     uint64     `gorm:"not null" json:"user_id"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
