package frame

import (
	"strconv"
	"strings"

	"github.com/ajitpratap0/tabula/pkg/column"
)

// boolLiteral matches only true/false text; ParseBool also accepts 1/0,
// which would shadow integer columns during inference.
func boolLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

// inferKind picks the narrowest parseable kind for a column from sampled
// fields, walking Bool, Int64, Float64 and falling back to String. Null
// tokens do not constrain the choice; an all-null sample infers String.
func inferKind(samples []string, isNull func(string) bool) column.DataType {
	seen := false
	allBool := true
	allInt := true
	allFloat := true
	for _, s := range samples {
		if isNull(s) {
			continue
		}
		seen = true
		if allBool && !boolLiteral(s) {
			allBool = false
		}
		if allInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat && !allInt {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allFloat = false
			}
		}
		if !allBool && !allInt && !allFloat {
			return column.String
		}
	}
	switch {
	case !seen:
		return column.String
	case allBool:
		return column.Bool
	case allInt:
		return column.Int64
	case allFloat:
		return column.Float64
	default:
		return column.String
	}
}
