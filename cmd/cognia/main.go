package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"cognia/adapters/csv"
	"cognia/adapters/excel"
	"cognia/adapters/render"
	"cognia/app"
	"cognia/domain/profile"
	"cognia/domain/table"
	"cognia/ports"
)

func main() {
	// Optional .env for local runs; missing file is fine.
	_ = godotenv.Load()

	var (
		input      = flag.String("input", "", "dataset file (.csv or .xlsx)")
		output     = flag.String("output", "", "report file (default: <input>_report.<format>)")
		format     = flag.String("format", "html", "output format: html, md, or json")
		multiplier = flag.Float64("iqr-multiplier", 1.5, "IQR multiplier for outlier fences")
		topK       = flag.Int("top-k", 20, "frequency table cap")
		threshold  = flag.Float64("cardinality-threshold", 0.05, "categorical distinct-ratio threshold")
		maxCard    = flag.Int("max-distinct", 50, "categorical distinct-count cap")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	t, err := readDataset(*input)
	if err != nil {
		log.Fatalf("failed to read dataset: %v", err)
	}

	opts := profile.Options{
		CategoricalCardinalityThreshold: *threshold,
		CategoricalMaxDistinct:          *maxCard,
		OutlierIQRMultiplier:            *multiplier,
		TopKFrequency:                   *topK,
	}

	service := app.NewProfileService(render.NewInlineDataRenderer(), nil)
	title := reportTitle(*input)
	result, err := service.GenerateReport(context.Background(), t, opts, title)
	if err != nil {
		log.Fatalf("profiling failed: %v", err)
	}

	var content []byte
	switch *format {
	case "html":
		content = render.HTML(result.Report)
	case "md":
		content = []byte(render.Markdown(result.Report))
	case "json":
		content, err = result.Report.JSON()
		if err != nil {
			log.Fatalf("failed to serialize report: %v", err)
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}

	dest := *output
	if dest == "" {
		base := strings.TrimSuffix(*input, filepath.Ext(*input))
		dest = fmt.Sprintf("%s_report.%s", base, *format)
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	log.Printf("report written to %s (fingerprint %s)", dest, result.Profile.Fingerprint)
}

func readDataset(path string) (*table.Table, error) {
	var reader ports.FileTableReader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		reader = excel.NewReader()
	default:
		reader = csv.NewReader()
	}
	return reader.ReadFile(path)
}

func reportTitle(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("EDA Report – %s", base)
}
