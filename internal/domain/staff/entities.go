package staff

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("staff not found")

// Staff is a back-office operator account (table petugas). PasswordHash
// is a bcrypt hash, never the plaintext.
type Staff struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	StaffID      string         `gorm:"column:staff_id;size:32;uniqueIndex:ux_petugas_staff_id" json:"staff_id"`
	Email        string         `gorm:"column:email;size:255;uniqueIndex:ux_petugas_email" json:"email"`
	FullName     string         `gorm:"column:nama_lengkap;size:255" json:"full_name"`
	PasswordHash string         `gorm:"column:password_hash;size:128" json:"-"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Staff) TableName() string { return "petugas" }
