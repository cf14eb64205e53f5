package profiler

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cognia/domain/core"
	"cognia/domain/profile"
	"cognia/domain/table"
	"cognia/internal/analysis"
	"cognia/internal/typer"
)

// DatasetProfiler orchestrates column typing, per-column analysis, and
// pairwise correlation into one immutable Profile. It holds no state across
// calls; all per-run caching lives in the run context below.
type DatasetProfiler struct{}

// New creates a dataset profiler
func New() *DatasetProfiler {
	return &DatasetProfiler{}
}

// run is the short-lived per-call context: the typed column views, derived
// once and shared by every analyzer, discarded when the Profile is built.
type run struct {
	opts     profile.Options
	typer    *typer.Typer
	missing  *analysis.MissingnessAnalyzer
	dist     *analysis.DistributionAnalyzer
	outliers *analysis.OutlierDetector
	corr     *analysis.CorrelationAnalyzer

	views []*analysis.ColumnView
}

// Profile analyzes the table under the given options. Input validity is
// checked before configuration; both abort before any column analysis.
// Column analyses run concurrently on a bounded worker pool; the Profile is
// assembled only after every column completes.
func (p *DatasetProfiler) Profile(ctx context.Context, t *table.Table, opts profile.Options) (*profile.Profile, error) {
	if t == nil {
		return nil, core.NewInputError("table is nil")
	}
	if t.ColumnCount() == 0 {
		return nil, core.ErrNoColumns
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		opts:     opts,
		typer:    typer.New(opts),
		missing:  analysis.NewMissingnessAnalyzer(),
		dist:     analysis.NewDistributionAnalyzer(opts),
		outliers: analysis.NewOutlierDetector(opts),
		corr:     analysis.NewCorrelationAnalyzer(),
		views:    make([]*analysis.ColumnView, t.ColumnCount()),
	}

	columns, err := r.analyzeColumns(ctx, t)
	if err != nil {
		return nil, err
	}

	numericCorr, categoricalCorr, err := r.correlate(ctx)
	if err != nil {
		return nil, err
	}

	quality := r.assessQuality(t, columns)

	prof := &profile.Profile{
		Shape:                   profile.Shape{Rows: t.RowCount(), Columns: t.ColumnCount()},
		Columns:                 columns,
		NumericCorrelations:     numericCorr,
		CategoricalCorrelations: categoricalCorr,
		Missingness:             r.missing.Summarize(columns, t.RowCount()),
		Quality:                 quality,
		Alerts:                  analysis.GenerateAlerts(columns, quality),
	}

	fp, err := fingerprint(prof)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint profile: %w", err)
	}
	prof.Fingerprint = fp

	return prof, nil
}

// analyzeColumns fans column analysis out over a worker pool. Columns share
// no mutable state, so order does not matter; results land in a pre-sized
// slice by column index. Each column is a natural cancellation point.
func (r *run) analyzeColumns(ctx context.Context, t *table.Table) ([]profile.ColumnProfile, error) {
	columns := make([]profile.ColumnProfile, t.ColumnCount())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i := 0; i < t.ColumnCount(); i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			col := t.ColumnAt(i)
			view := analysis.BuildView(col, r.typer.Infer(col))
			r.views[i] = view
			columns[i] = r.profileColumn(view)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("column analysis aborted: %w", err)
	}
	return columns, nil
}

// profileColumn runs every per-column analyzer against the cached view.
// No analyzer re-infers the type or re-parses values.
func (r *run) profileColumn(view *analysis.ColumnView) profile.ColumnProfile {
	cp := profile.ColumnProfile{
		Name:    view.Name,
		Type:    view.Type,
		Count:   view.NonMissing(),
		Missing: r.missing.Analyze(view.Rows, view.MissingCount),
	}

	switch {
	case view.NumericLike():
		cp.Numeric = r.dist.NumericStats(view.Numbers)
		cp.Outliers = r.outliers.Detect(view.Numbers, view.NumberRows, cp.Numeric)
	case view.CategoricalLike():
		cp.Categorical = r.dist.CategoricalStats(view.Labels)
	}
	// Text, Identifier, and Datetime columns carry counts and missingness
	// only.

	return cp
}

// correlate scores every unordered pair within each type family. Pairs are
// independent, so they share the worker pool pattern.
func (r *run) correlate(ctx context.Context) (*profile.CorrelationMatrix, *profile.CorrelationMatrix, error) {
	var numericViews, categoricalViews []*analysis.ColumnView
	for _, view := range r.views {
		if view.Type == profile.TypeNumeric {
			numericViews = append(numericViews, view)
		} else if view.Type.IsCategoricalFamily() {
			categoricalViews = append(categoricalViews, view)
		}
	}

	numeric, err := r.correlateFamily(ctx, numericViews, r.corr.Pearson)
	if err != nil {
		return nil, nil, err
	}
	categorical, err := r.correlateFamily(ctx, categoricalViews, r.corr.Association)
	if err != nil {
		return nil, nil, err
	}
	return numeric, categorical, nil
}

func (r *run) correlateFamily(
	ctx context.Context,
	views []*analysis.ColumnView,
	score func(x, y *analysis.ColumnView) profile.Stat,
) (*profile.CorrelationMatrix, error) {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	matrix := profile.NewCorrelationMatrix(names)

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < len(views); i++ {
		for j := i + 1; j < len(views); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	results := make([]profile.Stat, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for k, pr := range pairs {
		k, pr := k, pr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[k] = score(views[pr.i], views[pr.j])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("correlation analysis aborted: %w", err)
	}

	for k, pr := range pairs {
		matrix.Set(names[pr.i], names[pr.j], results[k])
	}
	return matrix, nil
}

// assessQuality counts duplicate rows by hashing formatted cells and tallies
// the column type families.
func (r *run) assessQuality(t *table.Table, columns []profile.ColumnProfile) profile.DataQuality {
	quality := profile.DataQuality{}
	for _, cp := range columns {
		if cp.Type.IsNumeric() {
			quality.NumericColumns++
		} else if cp.Type.IsCategoricalFamily() {
			quality.CategoricalColumns++
		}
	}

	seen := make(map[core.RowHash]struct{}, t.RowCount())
	cells := make([]string, t.ColumnCount())
	for row := 0; row < t.RowCount(); row++ {
		for col := 0; col < t.ColumnCount(); col++ {
			cells[col] = table.FormatValue(t.ColumnAt(col).Value(row))
		}
		h := core.ComputeRowHash(cells)
		if _, dup := seen[h]; dup {
			quality.DuplicateRows++
		} else {
			seen[h] = struct{}{}
		}
	}
	if t.RowCount() > 0 {
		quality.DuplicateRatio = float64(quality.DuplicateRows) / float64(t.RowCount())
	}
	return quality
}

func (r *run) workers() int {
	if r.opts.Workers > 0 {
		return r.opts.Workers
	}
	return runtime.NumCPU()
}

// fingerprint hashes the canonical JSON of the profile statistics. Identical
// input and options always produce the identical fingerprint.
func fingerprint(p *profile.Profile) (core.Fingerprint, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return core.NewFingerprint(data), nil
}
