package http

// toolSpec describes one callable tool for tools/list.
type toolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func obj(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var latLngSchema = obj(map[string]any{
	"lat": map[string]any{"type": "number", "minimum": -90, "maximum": 90},
	"lng": map[string]any{"type": "number", "minimum": -180, "maximum": 180},
}, "lat", "lng")

var allTools = []toolSpec{
	{
		Name: "search_places",
		Description: "Search for local businesses. Pass state_id to refine a " +
			"previous search (re-filter or re-sort the same results) without re-querying.",
		InputSchema: obj(map[string]any{
			"query":         map[string]any{"type": "string", "description": "What to search for, e.g. 'pizza near Ponsonby'"},
			"location_text": map[string]any{"type": "string", "description": "Where to search, or a 'near me' phrase"},
			"origin":        latLngSchema,
			"radius_m":      map[string]any{"type": "number", "minimum": 100, "maximum": 50000},
			"open_now":      map[string]any{"type": "boolean"},
			"min_rating":    map[string]any{"type": "number", "minimum": 1, "maximum": 5},
			"sort_by":       map[string]any{"type": "string", "enum": []string{"relevance", "rating", "distance"}},
			"max_results":   map[string]any{"type": "integer", "minimum": 1, "maximum": 20},
			"state_id":      map[string]any{"type": "string", "description": "State id of a previous search to refine"},
		}),
	},
	{
		Name:        "get_place_details",
		Description: "Get detailed information about a single business.",
		InputSchema: obj(map[string]any{
			"place_id": map[string]any{"type": "string"},
		}, "place_id"),
	},
	{
		Name:        "get_directions",
		Description: "Calculate a route between two coordinates.",
		InputSchema: obj(map[string]any{
			"origin":      latLngSchema,
			"destination": latLngSchema,
			"mode":        map[string]any{"type": "string", "enum": []string{"driving", "walking", "transit", "bicycling"}},
		}, "origin", "destination"),
	},
	{
		Name:        "compose_map_resource",
		Description: "Compose the fullscreen map view for a stored search session.",
		InputSchema: obj(map[string]any{
			"state_id":       map[string]any{"type": "string"},
			"route_polyline": map[string]any{"type": "string"},
		}, "state_id"),
	},
}
