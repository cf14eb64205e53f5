package typer

import (
	"strconv"
	"strings"
	"time"

	"cognia/domain/table"
)

// Boolean tokens are textual only. strconv.ParseBool would also claim "0"
// and "1", which must stay numeric so binary flags classify as Numeric.
var boolTokens = map[string]bool{
	"true": true, "false": false,
	"t": true, "f": false,
	"yes": true, "no": false,
}

// Accepted datetime layouts, checked in order
var datetimeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"01-02-2006",
}

// AsBool interprets a cell as a boolean token
func AsBool(v table.Value) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		b, ok := boolTokens[strings.ToLower(strings.TrimSpace(x))]
		return b, ok
	}
	return false, false
}

// AsFloat interprets a cell as a number. Numeric strings like "3.2" count;
// booleans and datetimes do not.
func AsFloat(v table.Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// AsDatetime interprets a cell as a date/time per the fixed layout set
func AsDatetime(v table.Value) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range datetimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// isIdentifierScalar reports whether a cell could belong to an identifier
// column: strings and integers qualify, floats and composite scalars do not.
func isIdentifierScalar(v table.Value) bool {
	switch v.(type) {
	case string, int, int32, int64:
		return true
	}
	return false
}
