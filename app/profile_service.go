package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"cognia/domain/core"
	"cognia/domain/profile"
	"cognia/domain/report"
	"cognia/domain/table"
	"cognia/internal/profiler"
	"cognia/internal/reporting"
	"cognia/ports"
)

// ProfileService is the single entry point: one table and one option set
// in, one complete report out. No shared mutable state across calls.
type ProfileService struct {
	profiler   ports.Profiler
	assembler  *reporting.Assembler
	repository ports.ProfileRepository // optional
}

// NewProfileService creates the service. renderer and repository may be nil.
func NewProfileService(renderer ports.PlotRenderer, repository ports.ProfileRepository) *ProfileService {
	return &ProfileService{
		profiler:   profiler.New(),
		assembler:  reporting.NewAssembler(renderer),
		repository: repository,
	}
}

// Result contains the complete output of one profiling call
type Result struct {
	Profile   *profile.Profile `json:"profile"`
	Report    *report.Report   `json:"report"`
	RuntimeMs int64            `json:"runtime_ms"`
}

// GenerateReport profiles the table and assembles the report. The caller
// receives either a complete report or the first structural error found;
// input validity is checked before configuration, and no partial profile is
// ever returned.
func (s *ProfileService) GenerateReport(ctx context.Context, t *table.Table, opts profile.Options, title string) (*Result, error) {
	start := time.Now()

	prof, err := s.profiler.Profile(ctx, t, opts)
	if err != nil {
		return nil, err
	}

	rep := s.assembler.Assemble(prof, title)
	runtime := time.Since(start).Milliseconds()
	log.Printf("[ProfileService] profiled %d columns x %d rows in %dms",
		prof.Shape.Columns, prof.Shape.Rows, runtime)

	if s.repository != nil {
		stored := &ports.StoredReport{
			ID:          rep.ID,
			Title:       rep.Title,
			Fingerprint: prof.Fingerprint,
			Profile:     prof,
			Report:      rep,
			CreatedAt:   core.Now(),
		}
		if err := s.repository.Save(ctx, stored); err != nil {
			// Persistence is best-effort; the report is already complete.
			log.Printf("[ProfileService] failed to persist report %s: %v", rep.ID, err)
		}
	}

	return &Result{Profile: prof, Report: rep, RuntimeMs: runtime}, nil
}

// GenerateReportWithDefaults profiles with the default options
func (s *ProfileService) GenerateReportWithDefaults(ctx context.Context, t *table.Table, title string) (*Result, error) {
	return s.GenerateReport(ctx, t, profile.DefaultOptions(), title)
}

// GetReport loads a stored report when a repository is attached
func (s *ProfileService) GetReport(ctx context.Context, id core.ReportID) (*ports.StoredReport, error) {
	if s.repository == nil {
		return nil, fmt.Errorf("%w: no repository attached", core.ErrProfileNotFound)
	}
	return s.repository.GetByID(ctx, id)
}
