package app

import (
	"context"
	"errors"
	"testing"

	"cognia/domain/core"
	"cognia/domain/table"
	"cognia/ports"
)

// memoryRepository is an in-memory repository test double
type memoryRepository struct {
	saved   []*ports.StoredReport
	saveErr error
}

func (m *memoryRepository) Save(ctx context.Context, stored *ports.StoredReport) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, stored)
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id core.ReportID) (*ports.StoredReport, error) {
	for _, s := range m.saved {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, core.ErrProfileNotFound
}

func (m *memoryRepository) List(ctx context.Context, limit int) ([]*ports.StoredReport, error) {
	return m.saved, nil
}

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New([]table.Column{
		table.NewColumn("v", []table.Value{1, 2, 3, 4, 5}),
	})
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return tbl
}

func TestGenerateReport_ReturnsProfileAndReport(t *testing.T) {
	service := NewProfileService(nil, nil)
	result, err := service.GenerateReportWithDefaults(context.Background(), sampleTable(t), "Test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Profile == nil || result.Report == nil {
		t.Fatal("result must carry both profile and report")
	}
	if result.Report.Fingerprint != result.Profile.Fingerprint {
		t.Error("report must carry the profile's fingerprint")
	}
	if result.Report.Title != "Test" {
		t.Errorf("title = %q, want Test", result.Report.Title)
	}
}

func TestGenerateReport_PersistsWhenRepositoryAttached(t *testing.T) {
	repo := &memoryRepository{}
	service := NewProfileService(nil, repo)

	result, err := service.GenerateReportWithDefaults(context.Background(), sampleTable(t), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d reports, want 1", len(repo.saved))
	}
	if repo.saved[0].ID != result.Report.ID {
		t.Error("stored report must carry the generated report ID")
	}

	stored, err := service.GetReport(context.Background(), result.Report.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Fingerprint != result.Profile.Fingerprint {
		t.Error("stored fingerprint mismatch")
	}
}

func TestGenerateReport_PersistenceFailureIsNotFatal(t *testing.T) {
	repo := &memoryRepository{saveErr: errors.New("db down")}
	service := NewProfileService(nil, repo)

	result, err := service.GenerateReportWithDefaults(context.Background(), sampleTable(t), "")
	if err != nil {
		t.Fatalf("save failure must not fail report generation: %v", err)
	}
	if result.Report == nil {
		t.Fatal("report should still be returned")
	}
}

func TestGenerateReport_PropagatesProfilingErrors(t *testing.T) {
	service := NewProfileService(nil, nil)
	_, err := service.GenerateReportWithDefaults(context.Background(), nil, "")
	if err == nil {
		t.Fatal("expected error for nil table")
	}
	if !core.IsInputError(err) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestGetReport_WithoutRepository(t *testing.T) {
	service := NewProfileService(nil, nil)
	_, err := service.GetReport(context.Background(), core.ReportID("nope"))
	if !core.IsNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
