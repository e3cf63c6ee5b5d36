package ports

import (
	"context"
	"time"
)

// AuditEventInput is the DTO passed from the employee service to the audit
// pipeline.
type AuditEventInput struct {
	EmployeeID    string
	EmployeeEmail string
	Action        string
	OccurredAt    time.Time
}

// AuditService processes employee change events delivered by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}
