package services

import (
	"strings"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// typeKeywords maps each short type key to the keywords its free-text
// election type string may carry instead. Kept as data so the ambiguity
// cases stay testable.
var typeKeywords = map[domain.ElectionTypeKey][]string{
	domain.TypePresidential:  {"president"},
	domain.TypeGubernatorial: {"governor"},
	domain.TypeHouseOfReps:   {"house", "representative"},
	domain.TypeSenatorial:    {"senate", "senator"},
	domain.TypeLocal:         {"local"},
}

// ResolveElection picks the election whose free-text type matches the short
// type key: exact case-insensitive equality, substring containment in either
// direction, or a keyword from the synonym table. The first election in list
// order that matches wins; keyword matching can be ambiguous when a type
// string carries several keywords, which is a known limitation of the
// matching rules rather than something to silently change here.
func ResolveElection(key domain.ElectionTypeKey, elections []*domain.Election) *domain.Election {
	k := strings.ToLower(strings.TrimSpace(string(key)))
	if k == "" {
		return nil
	}
	keywords := typeKeywords[domain.ElectionTypeKey(k)]

	for _, e := range elections {
		if e == nil {
			continue
		}
		if matchesTypeKey(k, strings.ToLower(e.ElectionType), keywords) {
			return e
		}
	}
	return nil
}

func matchesTypeKey(key, electionType string, keywords []string) bool {
	if electionType == "" {
		return false
	}
	if electionType == key {
		return true
	}
	if strings.Contains(electionType, key) || strings.Contains(key, electionType) {
		return true
	}
	for _, kw := range keywords {
		if strings.Contains(electionType, kw) {
			return true
		}
	}
	return false
}
