// Package filter derives the displayed subset of the last fetched result
// list. All predicates are combined with logical AND and the original
// response order is preserved; no ranking is applied.
package filter

import (
	"strings"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

// FocusTags maps a tag name to its keyword bundle. A listing matches a tag
// when any keyword is a case-insensitive substring of the listing haystack.
var FocusTags = map[string][]string{
	"instructional-design": {"instructional design", "instructional designer", "learning experience", "learning design"},
	"elearning-dev":        {"e-learning", "elearning", "articulate", "storyline", "captivate", "scorm"},
	"curriculum":           {"curriculum", "course develop", "courseware"},
	"training-delivery":    {"trainer", "training specialist", "training delivery", "facilitation"},
	"lms-admin":            {"lms", "learning management system", "cornerstone", "moodle"},
}

// TagNames returns the known focus tag names, for flag help and validation.
func TagNames() []string {
	names := make([]string, 0, len(FocusTags))
	for name := range FocusTags {
		names = append(names, name)
	}
	return names
}

// State holds the client-side filter inputs. Zero value filters nothing.
type State struct {
	Query      string
	RemoteOnly bool
	PayTypes   []models.PayType
	FocusTags  []string
}

// haystack is the concatenation the free-text and focus predicates match
// against, lowercased once per listing.
func haystack(l models.JobListing) string {
	return strings.ToLower(l.Title + " " + l.Company + " " + l.Department + " " + l.Location)
}

// Apply returns the ordered subsequence of listings satisfying all active
// predicates. It is pure: the input slice is never mutated.
func Apply(listings []models.JobListing, s State) []models.JobListing {
	query := strings.ToLower(strings.TrimSpace(s.Query))

	out := make([]models.JobListing, 0, len(listings))
	for _, l := range listings {
		hay := haystack(l)

		if query != "" && !strings.Contains(hay, query) {
			continue
		}
		if s.RemoteOnly && !l.Remote {
			continue
		}
		if len(s.PayTypes) > 0 && !payTypeMatches(l.PayType, s.PayTypes) {
			continue
		}
		if len(s.FocusTags) > 0 && !focusMatches(hay, s.FocusTags) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func payTypeMatches(pt models.PayType, selected []models.PayType) bool {
	for _, s := range selected {
		if pt == s {
			return true
		}
	}
	return false
}

// focusMatches reports whether any selected tag's keyword list hits the
// haystack. Unknown tag names never match.
func focusMatches(hay string, tags []string) bool {
	for _, tag := range tags {
		for _, kw := range FocusTags[tag] {
			if strings.Contains(hay, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}

// Memo wraps Apply with a single-entry cache keyed on the input tuple: the
// same result slice and an equal state return the previous output without
// recomputing. Not safe for concurrent use; the UI recomputes inline.
type Memo struct {
	listings []models.JobListing
	state    State
	result   []models.JobListing
	valid    bool
}

func (m *Memo) Apply(listings []models.JobListing, s State) []models.JobListing {
	if m.valid && sameSlice(m.listings, listings) && stateEqual(m.state, s) {
		return m.result
	}
	m.listings = listings
	m.state = s
	m.result = Apply(listings, s)
	m.valid = true
	return m.result
}

// sameSlice checks backing-array identity, not element equality. A fresh
// result set from a new search always misses the cache.
func sameSlice(a, b []models.JobListing) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func stateEqual(a, b State) bool {
	if a.Query != b.Query || a.RemoteOnly != b.RemoteOnly {
		return false
	}
	if len(a.PayTypes) != len(b.PayTypes) || len(a.FocusTags) != len(b.FocusTags) {
		return false
	}
	for i := range a.PayTypes {
		if a.PayTypes[i] != b.PayTypes[i] {
			return false
		}
	}
	for i := range a.FocusTags {
		if a.FocusTags[i] != b.FocusTags[i] {
			return false
		}
	}
	return true
}
