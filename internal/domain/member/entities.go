package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("member not found")

// Member is a cooperative member's biodata row (table biodata_anggota).
type Member struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	MemberID         string         `gorm:"column:id_anggota;size:32;uniqueIndex:ux_anggota_member_id" json:"member_id"`
	FullName         string         `gorm:"column:nama_lengkap;size:255" json:"full_name"`
	Email            string         `gorm:"column:email;size:255" json:"email"`
	NationalID       string         `gorm:"column:no_ktp;size:32" json:"national_id"`
	BirthPlace       string         `gorm:"column:tempat_lahir;size:128" json:"birth_place"`
	BirthDate        *time.Time     `gorm:"column:tanggal_lahir;type:date" json:"birth_date,omitempty"`
	Gender           string         `gorm:"column:jenis_kelamin;size:16" json:"gender"`
	Address          string         `gorm:"column:alamat;type:text" json:"address"`
	Phone            string         `gorm:"column:no_telepon;size:32" json:"phone"`
	Occupation       string         `gorm:"column:pekerjaan;size:128" json:"occupation"`
	SpouseNationalID string         `gorm:"column:ktp_pasangan;size:32" json:"spouse_national_id"`
	PhotoURL         string         `gorm:"column:foto_anggota;type:text" json:"photo_url"`
	Locked           bool           `gorm:"column:di_kunci" json:"locked"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "biodata_anggota" }
