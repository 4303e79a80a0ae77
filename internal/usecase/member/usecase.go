package member

import (
	"context"
	"errors"
	"time"

	domain "koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/domain/savings"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	members domain.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(members domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{members: members, uow: tx}
}

// Create registers a member together with a zeroed savings balance row;
// both inserts commit or neither.
func (u *Usecase) Create(ctx context.Context, in CreateMemberInput) (*MemberDTO, error) {
	if in.FullName == "" {
		return nil, errors.New("full_name is required")
	}
	birthDate, err := parseDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	m := &domain.Member{
		MemberID:         id.NewID32(),
		FullName:         in.FullName,
		Email:            in.Email,
		NationalID:       in.NationalID,
		BirthPlace:       in.BirthPlace,
		BirthDate:        birthDate,
		Gender:           in.Gender,
		Address:          in.Address,
		Phone:            in.Phone,
		Occupation:       in.Occupation,
		SpouseNationalID: in.SpouseNationalID,
		PhotoURL:         in.PhotoURL,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Members.Create(ctx, m); err != nil {
			return err
		}
		return r.Balances.Create(ctx, &savings.Balance{MemberID: m.MemberID})
	})
	if err != nil {
		return nil, err
	}
	return dto(m), nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*MemberDTO, error) {
	m, err := u.get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return dto(m), nil
}

func (u *Usecase) List(ctx context.Context) ([]MemberDTO, error) {
	rows, err := u.members.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *dto(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, memberID string, in UpdateMemberInput) (*MemberDTO, error) {
	m, err := u.get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	birthDate, err := parseDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	m.FullName = in.FullName
	m.Email = in.Email
	m.NationalID = in.NationalID
	m.BirthPlace = in.BirthPlace
	m.BirthDate = birthDate
	m.Gender = in.Gender
	m.Address = in.Address
	m.Phone = in.Phone
	m.Occupation = in.Occupation
	m.SpouseNationalID = in.SpouseNationalID
	m.PhotoURL = in.PhotoURL

	if err := u.members.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto(m), nil
}

// SetLocked toggles the di_kunci flag; a locked member cannot transact
// through the member-facing app.
func (u *Usecase) SetLocked(ctx context.Context, memberID string, locked bool) (*MemberDTO, error) {
	m, err := u.get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	m.Locked = locked
	if err := u.members.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto(m), nil
}

func (u *Usecase) Delete(ctx context.Context, memberID string) error {
	if _, err := u.get(ctx, memberID); err != nil {
		return err
	}
	return u.members.Delete(ctx, memberID)
}

func (u *Usecase) get(ctx context.Context, memberID string) (*domain.Member, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, errors.New("birth_date must be YYYY-MM-DD")
	}
	return &t, nil
}

func dto(m *domain.Member) *MemberDTO {
	return &MemberDTO{
		MemberID:         m.MemberID,
		FullName:         m.FullName,
		Email:            m.Email,
		NationalID:       m.NationalID,
		BirthPlace:       m.BirthPlace,
		BirthDate:        m.BirthDate,
		Gender:           m.Gender,
		Address:          m.Address,
		Phone:            m.Phone,
		Occupation:       m.Occupation,
		SpouseNationalID: m.SpouseNationalID,
		PhotoURL:         m.PhotoURL,
		Locked:           m.Locked,
		CreatedAt:        m.CreatedAt,
	}
}
