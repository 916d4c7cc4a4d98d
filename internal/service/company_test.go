package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCompanyService_CreateEnqueuesOneAuditJob(t *testing.T) {
	store := &mockCompanyStore{
		createCompany: func(_ context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
			return &models.Company{ID: 12, Name: req.Name, CNPJ: req.CNPJ}, nil
		},
	}
	enq := &capturingEnqueuer{}
	svc := NewCompanyService(store, enq, testLog())

	created, err := svc.CreateCompany(context.Background(), 3, models.CreateCompanyRequest{Name: "Acme", CNPJ: "1"})
	if err != nil {
		t.Fatalf("creating company: %v", err)
	}

	if created.ID != 12 {
		t.Fatalf("unexpected company: %+v", created)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 {
		t.Fatalf("expected exactly 1 audit job, got %d", len(jobs))
	}

	job := jobs[0]
	if job.ActorID != 3 || job.Action != models.AuditCreate || job.Entity != models.EntityCompanies || job.EntityID != 12 {
		t.Errorf("unexpected audit job: %+v", job)
	}

	if job.Details["name"] != "Acme" {
		t.Errorf("expected submitted payload in details, got %v", job.Details)
	}
}

func TestCompanyService_UpdateAuditRecordsSubmittedFieldsOnly(t *testing.T) {
	store := &mockCompanyStore{
		updateCompany: func(_ context.Context, id int64, _ models.UpdateCompanyRequest) (*models.Company, error) {
			return &models.Company{ID: id, Name: "New Name", CNPJ: "kept", Email: "kept@x"}, nil
		},
	}
	enq := &capturingEnqueuer{}
	svc := NewCompanyService(store, enq, testLog())

	name := "New Name"
	_, err := svc.UpdateCompany(context.Background(), 3, 12, models.UpdateCompanyRequest{Name: &name})
	if err != nil {
		t.Fatalf("updating company: %v", err)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 {
		t.Fatalf("expected exactly 1 audit job, got %d", len(jobs))
	}

	details := jobs[0].Details
	if details["name"] != "New Name" {
		t.Errorf("expected submitted name in details, got %v", details)
	}

	// Omitted fields must not appear even though the merged row has them.
	if _, ok := details["cnpj"]; ok {
		t.Errorf("details must carry only submitted fields, got %v", details)
	}
}

func TestCompanyService_FailedMutationSkipsAudit(t *testing.T) {
	store := &mockCompanyStore{
		deleteCompany: func(_ context.Context, _ int64) error {
			return models.ErrCompanyNotFound
		},
	}
	enq := &capturingEnqueuer{}
	svc := NewCompanyService(store, enq, testLog())

	err := svc.DeleteCompany(context.Background(), 3, 99)
	if !errors.Is(err, models.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	if len(enq.getJobs()) != 0 {
		t.Error("failed mutation must not enqueue an audit job")
	}
}

func TestCompanyService_DeleteAuditHasNoDetails(t *testing.T) {
	store := &mockCompanyStore{
		deleteCompany: func(_ context.Context, _ int64) error { return nil },
	}
	enq := &capturingEnqueuer{}
	svc := NewCompanyService(store, enq, testLog())

	if err := svc.DeleteCompany(context.Background(), 3, 12); err != nil {
		t.Fatalf("deleting company: %v", err)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 || jobs[0].Action != models.AuditDelete || jobs[0].Details != nil {
		t.Errorf("expected one DELETE job without details, got %+v", jobs)
	}
}
