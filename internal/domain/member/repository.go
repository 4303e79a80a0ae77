package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	List(ctx context.Context) ([]Member, error)
	Save(ctx context.Context, m *Member) error
	Delete(ctx context.Context, memberID string) error
}
