package ports

import (
	"context"
	"time"

	"github.com/workforcehq/employee-records/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to create a new employee record.
// Role defaults to Other and Department to General when empty; JoiningDate
// defaults to the creation time when zero.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	Role        string
	Department  string
	Salary      float64
	JoiningDate time.Time
}

// UpdateEmployeeInput carries a partial update. Nil fields are left untouched
// on the stored record.
type UpdateEmployeeInput struct {
	Name        *string
	Email       *string
	Role        *string
	Department  *string
	Salary      *float64
	JoiningDate *time.Time
}

// EmployeeService defines use-case operations for employee records.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
