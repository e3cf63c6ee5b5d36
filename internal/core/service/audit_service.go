package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workforcehq/employee-records/internal/core/domain"
	"github.com/workforcehq/employee-records/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single change event to the audit collection.
func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	event := &domain.AuditEvent{
		EmployeeID:    in.EmployeeID,
		EmployeeEmail: in.EmployeeEmail,
		Action:        domain.AuditAction(in.Action),
		OccurredAt:    occurredAt,
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}

	s.log.Debug().
		Str("employee_id", in.EmployeeID).
		Str("action", in.Action).
		Msg("audit event recorded")

	return nil
}
