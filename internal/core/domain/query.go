package domain

import "strings"

// Conversational queries arrive as free text ("pizza near Ponsonby").
// Splitting on a location keyword is deliberately simple: the agent in
// front of this service has already done the language understanding, so
// the split only needs to separate the business entity from the place name.

var locationKeywords = []string{
	"near",
	"in",
	"at",
	"around",
	"close to",
	"by",
	"next to",
}

// ParsedQuery is a free-text query split into what to search for and where.
type ParsedQuery struct {
	Entity   string
	Location string
}

// ParseQuery splits a query into entity and location. The explicit
// locationText wins when present; otherwise the location is extracted from
// the query after the first location keyword.
func ParseQuery(query, locationText string) ParsedQuery {
	queryLower := strings.ToLower(query)

	entity := query
	location := locationText

	for _, kw := range locationKeywords {
		// Keywords match as whole words only, so "wine" never splits on "in".
		idx := strings.Index(queryLower, " "+kw+" ")
		if idx == -1 {
			continue
		}
		entity = strings.TrimSpace(query[:idx])
		if location == "" || strings.EqualFold(location, "near me") {
			location = strings.TrimSpace(query[idx+len(kw)+2:])
		}
		break
	}

	return ParsedQuery{
		Entity:   strings.TrimSpace(entity),
		Location: strings.TrimSpace(location),
	}
}

// IsNearMe reports whether the location text is a "near me"-style phrase
// that requires resolving the caller's actual position.
func IsNearMe(locationText string) bool {
	switch strings.ToLower(strings.TrimSpace(locationText)) {
	case "near me", "nearby", "close by", "around here":
		return true
	}
	return false
}

// FormatSearchQuery renders a parsed query back into upstream search text.
func FormatSearchQuery(entity, location string) string {
	return strings.TrimSpace(entity + " in " + location)
}
