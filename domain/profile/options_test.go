package profile

import (
	"testing"

	"cognia/domain/core"
)

func TestDefaultOptions_AreValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestDefaultOptions_Values(t *testing.T) {
	opts := DefaultOptions()
	if opts.CategoricalCardinalityThreshold != 0.05 {
		t.Errorf("cardinality threshold = %g, want 0.05", opts.CategoricalCardinalityThreshold)
	}
	if opts.CategoricalMaxDistinct != 50 {
		t.Errorf("max distinct = %d, want 50", opts.CategoricalMaxDistinct)
	}
	if opts.OutlierIQRMultiplier != 1.5 {
		t.Errorf("IQR multiplier = %g, want 1.5", opts.OutlierIQRMultiplier)
	}
	if opts.TopKFrequency != 20 {
		t.Errorf("top-k = %d, want 20", opts.TopKFrequency)
	}
}

func TestOptions_Validate_RejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"threshold zero", func(o *Options) { o.CategoricalCardinalityThreshold = 0 }},
		{"threshold negative", func(o *Options) { o.CategoricalCardinalityThreshold = -0.1 }},
		{"threshold above one", func(o *Options) { o.CategoricalCardinalityThreshold = 1.5 }},
		{"max distinct zero", func(o *Options) { o.CategoricalMaxDistinct = 0 }},
		{"multiplier zero", func(o *Options) { o.OutlierIQRMultiplier = 0 }},
		{"multiplier negative", func(o *Options) { o.OutlierIQRMultiplier = -1 }},
		{"top-k zero", func(o *Options) { o.TopKFrequency = 0 }},
		{"workers negative", func(o *Options) { o.Workers = -2 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultOptions()
			c.mutate(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !core.IsConfigurationError(err) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestOptions_Validate_ThresholdOfOneIsAllowed(t *testing.T) {
	opts := DefaultOptions()
	opts.CategoricalCardinalityThreshold = 1
	if err := opts.Validate(); err != nil {
		t.Errorf("threshold of exactly 1 should be valid, got %v", err)
	}
}
