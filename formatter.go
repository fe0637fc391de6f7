package awardscan

import "strings"

// FormatRecord renders a record as "key: value" pairs in key order,
// separated by "; ".
func FormatRecord(r Record) string {
	keys := r.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+r[k])
	}
	return strings.Join(parts, "; ")
}

// FormatRecords renders one record per line.
func FormatRecords(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, FormatRecord(r))
	}
	return strings.Join(lines, "\n")
}

// FormatPerson renders a ballot entry, omitting the film when absent.
func FormatPerson(p Person) string {
	if p.Movie == "" {
		return p.Name
	}
	return p.Name + " – " + p.Movie
}
