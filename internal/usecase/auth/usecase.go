package auth

import (
	"context"
	"errors"
	"time"

	"koperasi-backend/internal/domain/staff"
	"koperasi-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Usecase struct {
	staff  staff.Repository
	secret []byte
	ttl    time.Duration
}

func NewUsecase(repo staff.Repository, secret []byte, ttl time.Duration) *Usecase {
	return &Usecase{staff: repo, secret: secret, ttl: ttl}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenDTO struct {
	Token     string    `json:"token"`
	StaffID   string    `json:"staff_id"`
	FullName  string    `json:"full_name"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateStaffInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type StaffDTO struct {
	StaffID  string `json:"staff_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Login verifies the password and issues an HS256 token carrying the
// staff id. Lookup misses and hash mismatches report the same error.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*TokenDTO, error) {
	s, err := u.staff.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, staff.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	exp := now.Add(u.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"staff_id": s.StaffID,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
	})
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{Token: signed, StaffID: s.StaffID, FullName: s.FullName, ExpiresAt: exp}, nil
}

// CreateStaff provisions an operator account with a bcrypt-hashed
// password.
func (u *Usecase) CreateStaff(ctx context.Context, in CreateStaffInput) (*StaffDTO, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s := &staff.Staff{
		StaffID:      id.NewID32(),
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
	}
	if err := u.staff.Create(ctx, s); err != nil {
		return nil, err
	}
	return &StaffDTO{StaffID: s.StaffID, Email: s.Email, FullName: s.FullName}, nil
}
