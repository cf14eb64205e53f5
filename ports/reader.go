package ports

import (
	"io"

	"cognia/domain/table"
)

// TableReader loads a tabular dataset from an external source into the
// engine's read-only table representation.
type TableReader interface {
	Read(r io.Reader) (*table.Table, error)
}

// FileTableReader loads a tabular dataset from a file path.
type FileTableReader interface {
	ReadFile(path string) (*table.Table, error)
}
