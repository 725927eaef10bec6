package user

import (
	"context"

	"github.com/deskhub/deskhub/internal/shared/authorization"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetNames maps ids to full names; unknown ids are omitted.
	GetNames(ctx context.Context, ids []uint) (map[uint]string, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	// ListStaff returns active it_staff and admin profiles ordered by name.
	ListStaff(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[authorization.UserRole]int64, error)
}

type ListFilter struct {
	Search   string
	Role     *authorization.UserRole
	SortBy   string
	Page     int
	PageSize int
}
