package member

import "time"

type CreateMemberInput struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	NationalID       string `json:"national_id"`
	BirthPlace       string `json:"birth_place"`
	BirthDate        string `json:"birth_date"` // YYYY-MM-DD, optional
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Occupation       string `json:"occupation"`
	SpouseNationalID string `json:"spouse_national_id"`
	PhotoURL         string `json:"photo_url"`
}

type UpdateMemberInput = CreateMemberInput

type MemberDTO struct {
	MemberID         string     `json:"member_id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	NationalID       string     `json:"national_id"`
	BirthPlace       string     `json:"birth_place"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	Gender           string     `json:"gender"`
	Address          string     `json:"address"`
	Phone            string     `json:"phone"`
	Occupation       string     `json:"occupation"`
	SpouseNationalID string     `json:"spouse_national_id"`
	PhotoURL         string     `json:"photo_url"`
	Locked           bool       `json:"locked"`
	CreatedAt        time.Time  `json:"created_at"`
}
