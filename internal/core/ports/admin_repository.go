package ports

import (
	"context"

	"github.com/workforcehq/employee-records/internal/core/domain"
)

// AdminRepository defines the interface for admin credential persistence.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}
