package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	if !IsInputError(ErrNoColumns) {
		t.Error("ErrNoColumns should be an input error")
	}
	if !IsInputError(NewRowCountError("a", 2, 3)) {
		t.Error("row count mismatch should be an input error")
	}
	if !IsInputError(NewInputError("table is nil")) {
		t.Error("NewInputError should wrap ErrInput")
	}
	if !IsConfigurationError(NewConfigurationError("workers", "must be non-negative")) {
		t.Error("NewConfigurationError should wrap ErrConfiguration")
	}
	if !IsNotFoundError(ErrProfileNotFound) {
		t.Error("ErrProfileNotFound should be a not-found error")
	}
}

func TestErrorCategoriesAreDisjoint(t *testing.T) {
	if IsConfigurationError(ErrNoColumns) {
		t.Error("input errors must not satisfy the configuration check")
	}
	if IsInputError(ErrConfiguration) {
		t.Error("configuration errors must not satisfy the input check")
	}
}

func TestErrorWrappingSurvivesAnnotation(t *testing.T) {
	wrapped := fmt.Errorf("column analysis aborted: %w", NewInputError("bad cell"))
	if !IsInputError(wrapped) {
		t.Error("annotation must preserve the error category")
	}
	if !errors.Is(wrapped, ErrInput) {
		t.Error("errors.Is should still resolve the sentinel")
	}
}

func TestRowCountErrorMessage(t *testing.T) {
	err := NewRowCountError("age", 5, 6)
	want := `column "age" has 5 rows, table declares 6`
	if got := err.Error(); !errors.Is(err, ErrRowCountMismatch) || !strings.Contains(got, want) {
		t.Errorf("error = %q, want substring %q", got, want)
	}
}
