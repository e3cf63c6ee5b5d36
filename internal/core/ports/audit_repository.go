package ports

import (
	"context"

	"github.com/workforcehq/employee-records/internal/core/domain"
)

// AuditRepository persists employee change events to the audit collection.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
}
