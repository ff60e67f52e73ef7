package cache

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/localhub/localhub/internal/core/domain"
)

// absentToken marks an omitted optional argument. It is distinct from any
// serialized value so "radius omitted" never collides with "radius = 0".
const absentToken = "-"

// Key builds a deterministic cache key from a namespace and the call's
// positional arguments. Structurally equal arguments always produce the
// same key; argument order matters.
func Key(namespace string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, namespace)
	for _, arg := range args {
		parts = append(parts, serializeArg(arg))
	}
	return strings.Join(parts, ":")
}

func serializeArg(arg any) string {
	switch v := arg.(type) {
	case nil:
		return absentToken
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case domain.LatLng:
		return formatLatLng(v)
	case *domain.LatLng:
		if v == nil {
			return absentToken
		}
		return formatLatLng(*v)
	case *float64:
		if v == nil {
			return absentToken
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Six decimal places is ~11cm of precision, plenty for cache identity.
func formatLatLng(p domain.LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lng, 'f', 6, 64)
}
