package ports

import (
	"context"

	"cognia/domain/core"
	"cognia/domain/profile"
	"cognia/domain/report"
)

// StoredReport pairs a report with the profile it was rendered from
type StoredReport struct {
	ID          core.ReportID    `json:"id"`
	Title       string           `json:"title"`
	Fingerprint core.Fingerprint `json:"fingerprint"`
	Profile     *profile.Profile `json:"profile"`
	Report      *report.Report   `json:"report"`
	CreatedAt   core.Timestamp   `json:"created_at"`
}

// ProfileRepository persists profiling results
type ProfileRepository interface {
	Save(ctx context.Context, stored *StoredReport) error
	GetByID(ctx context.Context, id core.ReportID) (*StoredReport, error)
	List(ctx context.Context, limit int) ([]*StoredReport, error)
}
