package database

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// DateLayout is how graph date values are rendered, e.g. 15-Oct-1999.
const DateLayout = "02-Jan-2006"

// Normalize converts driver values into plain JSON-friendly values: temporal
// types become strings, nodes and relationships become their property maps,
// and lists and maps are converted recursively.
func Normalize(value any) any {
	switch v := value.(type) {
	case dbtype.Date:
		return v.Time().Format(DateLayout)
	case dbtype.LocalDateTime:
		return v.Time().Format("2006-01-02T15:04:05")
	case dbtype.LocalTime:
		return v.Time().Format("15:04:05")
	case dbtype.Time:
		return v.Time().Format("15:04:05Z07:00")
	case time.Time:
		return v.Format(time.RFC3339)
	case dbtype.Duration:
		return v.String()
	case dbtype.Node:
		return normalizeMap(v.Props)
	case dbtype.Relationship:
		return normalizeMap(v.Props)
	case map[string]any:
		return normalizeMap(v)
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = Normalize(item)
		}
		return list
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = Normalize(value)
	}
	return out
}
