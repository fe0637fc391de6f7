package awardscan

import (
	"sort"
	"strings"
)

// Attribute names stamped onto records by the extractors. Attribute-table
// records additionally carry one attribute per column header.
const (
	AttrWinner       = "winner"
	AttrAwardYear    = "awardYear"
	AttrAwardLink    = "awardLink"
	AttrCalendarYear = "calendarYear"
	AttrPerson       = "person"
	AttrPersonLink   = "personLink"
	AttrMovie        = "movie"
	AttrMovieLink    = "movieLink"
)

// Winner flag values.
const (
	WinnerYes = "1"
	WinnerNo  = "0"
)

// Record maps attribute names to values for one nomination.
// An attribute absent from the source is omitted rather than set to "".
type Record map[string]string

// Get returns the value for key and whether it was present.
func (r Record) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// IsWinner reports whether the record carries winner="1".
func (r Record) IsWinner() bool {
	return r[AttrWinner] == WinnerYes
}

// Keys returns the attribute names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Person is one entry of a category-year ballot list.
// Movie and MovieLink are empty when the entry named no film.
type Person struct {
	Name      string `json:"name"`
	Link      string `json:"link"`
	Movie     string `json:"movie"`
	MovieLink string `json:"movieLink"`
}

// Link is a hyperlink's display text and target.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CellValue is the ordered, duplicate-free list of values found in one
// marked-up cell. The zero value is an empty cell ready for use.
type CellValue struct {
	values []string
	seen   map[string]struct{}
}

// NewCellValue returns a CellValue holding values in order, skipping blanks
// and duplicates.
func NewCellValue(values ...string) CellValue {
	var v CellValue
	for _, s := range values {
		v.Add(s)
	}
	return v
}

// Add appends s after trimming surrounding whitespace.
// Returns false if s is blank or already present.
func (v *CellValue) Add(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if v.seen == nil {
		v.seen = make(map[string]struct{})
	}
	if _, ok := v.seen[s]; ok {
		return false
	}
	v.seen[s] = struct{}{}
	v.values = append(v.values, s)
	return true
}

// Contains reports whether s (trimmed) is already present.
func (v CellValue) Contains(s string) bool {
	_, ok := v.seen[strings.TrimSpace(s)]
	return ok
}

// Values returns a copy of the values in insertion order.
func (v CellValue) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

// Len returns the number of values.
func (v CellValue) Len() int {
	return len(v.values)
}

// String joins the values with ", ".
func (v CellValue) String() string {
	return strings.Join(v.values, ", ")
}
