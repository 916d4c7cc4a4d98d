package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldledger/fieldledger/internal/models"
	"github.com/fieldledger/fieldledger/internal/store"
)

func TestWorkLogStore_Lifecycle(t *testing.T) {
	base := setupTestBase(t)
	companies := store.NewCompanyStore(base)
	s := store.NewWorkLogStore(base)
	ctx := context.Background()

	co, err := companies.CreateCompany(ctx, models.CreateCompanyRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("creating company: %v", err)
	}

	created, err := s.CreateWorkLog(ctx, models.CreateWorkLogRequest{
		Date:      "2026-08-15",
		CompanyID: &co.ID,
		Value:     180.50,
		Status:    models.StatusPending,
	})
	if err != nil {
		t.Fatalf("creating work log: %v", err)
	}

	if created.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}

	// Approve payment, then revert it. Both directions are ordinary updates.
	paid := models.StatusPaid
	updated, err := s.UpdateWorkLog(ctx, created.ID, models.UpdateWorkLogRequest{Status: &paid})
	if err != nil {
		t.Fatalf("marking paid: %v", err)
	}

	if updated.Status != models.StatusPaid {
		t.Errorf("expected paid, got %q", updated.Status)
	}

	if updated.Value != 180.50 {
		t.Errorf("partial update must preserve value, got %v", updated.Value)
	}

	pending := models.StatusPending
	updated, err = s.UpdateWorkLog(ctx, created.ID, models.UpdateWorkLogRequest{Status: &pending})
	if err != nil {
		t.Fatalf("reverting to pending: %v", err)
	}

	if updated.Status != models.StatusPending {
		t.Errorf("expected pending after reversion, got %q", updated.Status)
	}
}

func TestWorkLogStore_DanglingReferenceRendersNullName(t *testing.T) {
	base := setupTestBase(t)
	companies := store.NewCompanyStore(base)
	s := store.NewWorkLogStore(base)
	ctx := context.Background()

	co, err := companies.CreateCompany(ctx, models.CreateCompanyRequest{Name: "Ephemeral Co"})
	if err != nil {
		t.Fatalf("creating company: %v", err)
	}

	created, err := s.CreateWorkLog(ctx, models.CreateWorkLogRequest{
		Date:      "2026-08-16",
		CompanyID: &co.ID,
		Status:    models.StatusPending,
	})
	if err != nil {
		t.Fatalf("creating work log: %v", err)
	}

	entry, err := s.GetWorkLog(ctx, created.ID)
	if err != nil {
		t.Fatalf("getting work log: %v", err)
	}

	if entry.CompanyName == nil || *entry.CompanyName != "Ephemeral Co" {
		t.Fatalf("expected resolved company name, got %v", entry.CompanyName)
	}

	if err := companies.DeleteCompany(ctx, co.ID); err != nil {
		t.Fatalf("deleting company: %v", err)
	}

	entry, err = s.GetWorkLog(ctx, created.ID)
	if err != nil {
		t.Fatalf("getting work log after company delete: %v", err)
	}

	if entry.CompanyID == nil || *entry.CompanyID != co.ID {
		t.Errorf("dangling company_id must survive the delete, got %v", entry.CompanyID)
	}

	if entry.CompanyName != nil {
		t.Errorf("expected null company name after delete, got %q", *entry.CompanyName)
	}
}

func TestWorkLogStore_ListPagination(t *testing.T) {
	base := setupTestBase(t)
	s := store.NewWorkLogStore(base)
	ctx := context.Background()

	for _, date := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		if _, err := s.CreateWorkLog(ctx, models.CreateWorkLogRequest{Date: date, Status: models.StatusPending}); err != nil {
			t.Fatalf("creating work log: %v", err)
		}
	}

	entries, hasMore, err := s.ListWorkLogs(ctx, 2, 0)
	if err != nil {
		t.Fatalf("listing work logs: %v", err)
	}

	if len(entries) != 2 || !hasMore {
		t.Fatalf("expected 2 entries with hasMore, got %d (hasMore=%v)", len(entries), hasMore)
	}

	// Newest date first.
	if entries[0].Date != "2026-08-03" {
		t.Errorf("expected newest-first ordering, got %q", entries[0].Date)
	}

	entries, hasMore, err = s.ListWorkLogs(ctx, 2, 2)
	if err != nil {
		t.Fatalf("listing second page: %v", err)
	}

	if len(entries) != 1 || hasMore {
		t.Errorf("expected final page of 1 without hasMore, got %d (hasMore=%v)", len(entries), hasMore)
	}
}

func TestWorkLogStore_NotFound(t *testing.T) {
	base := setupTestBase(t)
	s := store.NewWorkLogStore(base)
	ctx := context.Background()

	if _, err := s.GetWorkLog(ctx, 999999); !errors.Is(err, models.ErrWorkLogNotFound) {
		t.Errorf("expected ErrWorkLogNotFound, got %v", err)
	}

	if err := s.DeleteWorkLog(ctx, 999999); !errors.Is(err, models.ErrWorkLogNotFound) {
		t.Errorf("expected ErrWorkLogNotFound on delete, got %v", err)
	}
}
