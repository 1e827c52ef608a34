// Package roster reconciles extracted names against an authoritative
// faculty roster. Reconciliation is a total predicate: every name gets a
// deterministic include/exclude decision, never an error.
package roster

import (
	"log/slog"
	"strings"
)

// entry is one indexed roster member.
type entry struct {
	fullName  string
	firstName string
}

// Reconciler decides whether an extracted name belongs to the target
// population. The roster and override table are explicit construction
// inputs, not process-wide state, so tests can substitute both.
type Reconciler struct {
	overrides     map[string]string
	excludeMarker string
	byLastName    map[string][]entry
	logger        *slog.Logger
}

// generationalSuffixes are trailing name tokens that do not carry the
// family name; the index uses the token before them instead.
var generationalSuffixes = map[string]bool{
	"jr": true, "jr.": true, "sr": true, "sr.": true,
	"ii": true, "iii": true, "iv": true,
}

// NewReconciler builds a reconciler from the canonical roster (names in
// "First [Middle] Last" order), a manual override table keyed by exact
// extracted-name strings, and the override value that marks an exclusion.
func NewReconciler(roster []string, overrides map[string]string, excludeMarker string, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reconciler{
		overrides:     overrides,
		excludeMarker: excludeMarker,
		byLastName:    make(map[string][]entry, len(roster)),
		logger:        logger,
	}
	for _, name := range roster {
		tokens := strings.Fields(name)
		if len(tokens) == 0 {
			continue
		}
		last := tokens[len(tokens)-1]
		if len(tokens) > 1 && generationalSuffixes[strings.ToLower(last)] {
			last = tokens[len(tokens)-2]
		}
		key := strings.ToLower(last)
		r.byLastName[key] = append(r.byLastName[key], entry{
			fullName:  name,
			firstName: tokens[0],
		})
	}
	return r
}

// IsIncluded reports whether the extracted name is a legitimate member of
// the target population. An override hit is final; otherwise the name is
// matched fuzzily against the roster by exact last name and a shared
// first-name prefix. Unmatched names are excluded, never an error.
func (r *Reconciler) IsIncluded(name string) bool {
	if verdict, ok := r.overrides[name]; ok {
		if verdict == r.excludeMarker {
			r.logger.Debug("override excludes name", slog.String("name", name))
			return false
		}
		r.logger.Debug("override confirms name",
			slog.String("name", name),
			slog.String("canonical", verdict))
		return true
	}

	last, first := splitExtractedName(name)
	candidates := r.byLastName[strings.ToLower(last)]
	for _, c := range candidates {
		if firstNamePrefixMatch(first, c.firstName) {
			return true
		}
	}

	r.logger.Debug("name not on roster", slog.String("name", name))
	return false
}

// splitExtractedName parses an extracted "Last, First [Middle]" name.
// Without a comma the whole string is treated as the last name.
func splitExtractedName(name string) (last, first string) {
	idx := strings.Index(name, ",")
	if idx < 0 {
		return strings.TrimSpace(name), ""
	}
	last = strings.TrimSpace(name[:idx])
	rest := strings.Fields(name[idx+1:])
	if len(rest) > 0 {
		first = rest[0]
	}
	return last, first
}

// firstNamePrefixMatch compares the first three characters of two first
// names, tolerating either string being shorter. Empty input never matches.
// Known precision limit: roster entries sharing a last name and a
// three-character first-name prefix are indistinguishable.
func firstNamePrefixMatch(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	n := 3
	if len(la) < n {
		n = len(la)
	}
	if len(lb) < n {
		n = len(lb)
	}
	if n == 0 {
		return false
	}
	return la[:n] == lb[:n]
}
