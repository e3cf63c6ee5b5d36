package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/workforcehq/employee-records/internal/core/domain"
	"github.com/workforcehq/employee-records/internal/core/ports"
)

// EmployeeCache abstracts the read-through cache (Redis). A nil, nil return
// from the getters means a cache miss.
type EmployeeCache interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Set(ctx context.Context, e *domain.Employee) error
	GetList(ctx context.Context) ([]*domain.Employee, error)
	SetList(ctx context.Context, employees []*domain.Employee) error
	Invalidate(ctx context.Context, id string) error
}

// AuditRecorder enqueues change events for asynchronous persistence.
type AuditRecorder interface {
	Enqueue(event ports.AuditEventInput)
}

type EmployeeService struct {
	repo   ports.EmployeeRepository
	cache  EmployeeCache
	audit  AuditRecorder
	logger zerolog.Logger
}

// NewEmployeeService wires the repository with an optional cache and audit
// recorder; either may be nil.
func NewEmployeeService(repo ports.EmployeeRepository, cache EmployeeCache, audit AuditRecorder, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// Create validates the input, applies defaults, and persists a new record.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" {
		return nil, domain.ErrMissingFields
	}
	if input.Salary < 0 {
		return nil, domain.ErrNegativeSalary
	}

	role, err := resolveRole(input.Role)
	if err != nil {
		return nil, err
	}

	department := strings.TrimSpace(input.Department)
	if department == "" {
		department = domain.DefaultDepartment
	}

	joiningDate := input.JoiningDate
	if joiningDate.IsZero() {
		joiningDate = time.Now().UTC()
	}

	employee := &domain.Employee{
		Name:        name,
		Email:       email,
		Role:        role,
		Department:  department,
		Salary:      input.Salary,
		JoiningDate: joiningDate,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, created.ID)
	s.record(created, domain.AuditCreated)
	s.logger.Info().Str("employee_id", created.ID).Str("role", string(created.Role)).Msg("employee created")

	return created, nil
}

// List returns all employee records, unordered.
func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("list cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, employees); err != nil {
			s.logger.Warn().Err(err).Msg("list cache write failed")
		}
	}
	return employees, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if s.cache != nil {
		cached, err := s.cache.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("employee_id", id).Msg("cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, employee); err != nil {
			s.logger.Warn().Err(err).Str("employee_id", id).Msg("cache write failed")
		}
	}
	return employee, nil
}

// Update merges the supplied fields into the stored record, revalidating the
// role enumeration and the salary bound.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrMissingFields
		}
		existing.Name = name
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return nil, domain.ErrMissingFields
		}
		existing.Email = email
	}
	if input.Role != nil {
		role, err := resolveRole(*input.Role)
		if err != nil {
			return nil, err
		}
		existing.Role = role
	}
	if input.Department != nil {
		department := strings.TrimSpace(*input.Department)
		if department == "" {
			department = domain.DefaultDepartment
		}
		existing.Department = department
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, domain.ErrNegativeSalary
		}
		existing.Salary = *input.Salary
	}
	if input.JoiningDate != nil && !input.JoiningDate.IsZero() {
		existing.JoiningDate = input.JoiningDate.UTC()
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.record(updated, domain.AuditUpdated)
	s.logger.Info().Str("employee_id", id).Msg("employee updated")

	return updated, nil
}

// Delete removes the record permanently. A second delete of the same id
// reports not-found rather than failing hard.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.record(existing, domain.AuditDeleted)
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")

	return nil
}

func (s *EmployeeService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("employee_id", id).Msg("cache invalidation failed")
	}
}

func (s *EmployeeService) record(e *domain.Employee, action domain.AuditAction) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEventInput{
		EmployeeID:    e.ID,
		EmployeeEmail: e.Email,
		Action:        string(action),
		OccurredAt:    time.Now().UTC(),
	})
}

// resolveRole maps the empty value to the default role and rejects anything
// outside the enumeration so arbitrary strings are never stored.
func resolveRole(raw string) (domain.Role, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.RoleOther, nil
	}
	role := domain.Role(trimmed)
	if !role.IsValid() {
		return "", domain.ErrInvalidRole
	}
	return role, nil
}
