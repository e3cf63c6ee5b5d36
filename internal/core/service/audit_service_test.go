package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workforcehq/employee-records/internal/core/domain"
	"github.com/workforcehq/employee-records/internal/core/ports"
)

type stubAuditRepo struct {
	events []*domain.AuditEvent
	err    error
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, event *domain.AuditEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Process(context.Background(), ports.AuditEventInput{
		EmployeeID:    "emp-1",
		EmployeeEmail: "ann@x.com",
		Action:        "created",
		OccurredAt:    ts,
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	got := repo.events[0]
	if got.Action != domain.AuditCreated || got.EmployeeID != "emp-1" || !got.OccurredAt.Equal(ts) {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestAuditService_Process_DefaultsTimestamp(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	before := time.Now().UTC()
	if err := svc.Process(context.Background(), ports.AuditEventInput{
		EmployeeID: "emp-1",
		Action:     "deleted",
	}); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got := repo.events[0].OccurredAt
	if got.Before(before) || got.After(time.Now().UTC()) {
		t.Fatalf("expected timestamp to default to now, got %v", got)
	}
}

func TestAuditService_Process_WrapsRepoError(t *testing.T) {
	sentinel := errors.New("collection unreachable")
	svc := NewAuditService(&stubAuditRepo{err: sentinel}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.AuditEventInput{EmployeeID: "emp-1", Action: "updated"})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
