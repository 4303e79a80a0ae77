package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	GetByStaffID(ctx context.Context, staffID string) (*Staff, error)
}
