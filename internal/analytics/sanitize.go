package analytics

// personalKeys is the fixed denylist of payload fields that must
// never be stored. Matching is exact and case-sensitive.
var personalKeys = map[string]struct{}{
	"name":    {},
	"email":   {},
	"phone":   {},
	"address": {},
	"ip":      {},
	"userId":  {},
}

const (
	maxValueLen    = 100
	ellipsisMarker = "..."
)

// sanitize returns a copy of data with denylisted keys removed and
// oversized string values truncated to maxValueLen characters plus an
// ellipsis marker. Inspection is not recursive: nested maps pass
// through untouched.
func sanitize(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if _, denied := personalKeys[k]; denied {
			continue
		}
		if s, ok := v.(string); ok {
			out[k] = truncate(s)
			continue
		}
		out[k] = v
	}
	return out
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxValueLen {
		return s
	}
	return string(runes[:maxValueLen]) + ellipsisMarker
}
