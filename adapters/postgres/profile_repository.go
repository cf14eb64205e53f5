package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cognia/domain/core"
	"cognia/domain/profile"
	"cognia/domain/report"
	"cognia/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	profile     JSONB NOT NULL,
	report      JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_fingerprint_idx ON reports (fingerprint);
`

// profileRepository implements ports.ProfileRepository on Postgres
type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a profile repository
func NewProfileRepository(db *sqlx.DB) ports.ProfileRepository {
	return &profileRepository{db: db}
}

// Connect opens a Postgres connection and ensures the schema exists
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return db, nil
}

// Save inserts a stored report
func (r *profileRepository) Save(ctx context.Context, stored *ports.StoredReport) error {
	profileJSON, err := json.Marshal(stored.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	reportJSON, err := json.Marshal(stored.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `INSERT INTO reports (id, title, fingerprint, profile, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.ExecContext(ctx, query,
		stored.ID.String(), stored.Title, stored.Fingerprint.String(),
		profileJSON, reportJSON, stored.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

type storedRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Fingerprint string         `db:"fingerprint"`
	Profile     []byte         `db:"profile"`
	Report      []byte         `db:"report"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

// GetByID retrieves a stored report
func (r *profileRepository) GetByID(ctx context.Context, id core.ReportID) (*ports.StoredReport, error) {
	var row storedRow
	query := `SELECT id, title, fingerprint, profile, report, created_at FROM reports WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return row.toStored()
}

// List returns the most recent stored reports
func (r *profileRepository) List(ctx context.Context, limit int) ([]*ports.StoredReport, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []storedRow
	query := `SELECT id, title, fingerprint, profile, report, created_at
		FROM reports ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	out := make([]*ports.StoredReport, 0, len(rows))
	for _, row := range rows {
		stored, err := row.toStored()
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

func (row storedRow) toStored() (*ports.StoredReport, error) {
	var prof profile.Profile
	if err := json.Unmarshal(row.Profile, &prof); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	var rep report.Report
	if err := json.Unmarshal(row.Report, &rep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	stored := &ports.StoredReport{
		ID:          core.ReportID(row.ID),
		Title:       row.Title,
		Fingerprint: core.Fingerprint(row.Fingerprint),
		Profile:     &prof,
		Report:      &rep,
	}
	if row.CreatedAt.Valid {
		stored.CreatedAt = core.NewTimestamp(row.CreatedAt.Time)
	}
	return stored, nil
}
