package domain

import "time"

// AuditAction identifies the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// AuditEvent records a single mutation applied to an employee record.
type AuditEvent struct {
	EmployeeID    string
	EmployeeEmail string
	Action        AuditAction
	OccurredAt    time.Time
}
