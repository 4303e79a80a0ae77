package membermock

import (
	"context"
	"errors"

	domain "koperasi-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("membermock: method not implemented")

// Repo is a function-backed mock satisfying member.Repository. Fill in
// only the fields a test needs.
type Repo struct {
	CreateFn        func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
	ListFn          func(ctx context.Context) ([]domain.Member, error)
	SaveFn          func(ctx context.Context, m *domain.Member) error
	DeleteFn        func(ctx context.Context, memberID string) error
}

func (m *Repo) Create(ctx context.Context, mem *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mem)
	}
	return nil
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Member, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, mem *domain.Member) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mem)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, memberID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, memberID)
	}
	return nil
}
