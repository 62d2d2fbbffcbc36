package services

import "github.com/samber/lo"

// stateRegions is the fixed partition of US state codes into named regions
// used by the location factor. Read-only; never mutate.
var stateRegions = map[string][]string{
	"West Coast": {"CA", "OR", "WA"},
	"Mountain":   {"CO", "UT", "AZ", "NM", "NV", "ID", "MT", "WY"},
	"Midwest":    {"IL", "IN", "MI", "OH", "WI", "MN", "IA", "MO", "ND", "SD", "NE", "KS"},
	"Northeast":  {"NY", "PA", "NJ", "CT", "MA", "VT", "NH", "ME", "RI"},
	"Southeast":  {"FL", "GA", "NC", "SC", "VA", "TN", "AL", "MS", "LA", "AR", "KY", "WV"},
	"Southwest":  {"TX", "OK"},
}

// StateRegion maps a state code to its region, or "Other" when the state
// belongs to no bucket.
func StateRegion(state string) string {
	for region, states := range stateRegions {
		if lo.Contains(states, state) {
			return region
		}
	}
	return "Other"
}
