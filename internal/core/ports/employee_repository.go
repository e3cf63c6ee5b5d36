package ports

import (
	"context"

	"github.com/workforcehq/employee-records/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
// Email uniqueness is enforced by the store's unique index, so concurrent
// creates with the same email resolve to exactly one success.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
