package awardscan

// LinkPosition selects which hyperlink of a fragment is used when only one
// value is wanted.
type LinkPosition int

// Link positions for CellSplitter.Link.
const (
	LinkFirst LinkPosition = iota
	LinkLast
)

// Importance states which side of a "person – film" ballot entry leads on a
// category-year page. It decides which hyperlink anchors each segment.
type Importance int

// Importance values for category-year extraction.
const (
	PersonFirst Importance = iota
	FilmFirst
)

// LinkPosition returns the link position used for segments under this importance.
func (i Importance) LinkPosition() LinkPosition {
	if i == FilmFirst {
		return LinkLast
	}
	return LinkFirst
}

// String returns the flag name used on the command line.
func (i Importance) String() string {
	if i == FilmFirst {
		return "film"
	}
	return "person"
}

// CellSplitter normalizes the marked-up content of a single cell or line
// fragment. It never parses a whole document.
type CellSplitter interface {
	// Split returns the cell's values: hyperlink texts in document order,
	// then residual plain-text fragments not already present. Footnote
	// markers are dropped and line breaks separate values like ", ".
	Split(raw string) CellValue

	// Link returns the first or last hyperlink in the fragment.
	// The bool result is false if the fragment holds no hyperlink.
	Link(fragment string, pos LinkPosition) (Link, bool)

	// Text returns the fragment's tag-stripped, trimmed text.
	Text(fragment string) string
}

// RecordExtractor is the extraction engine API: one entry point per layout
// family, each a pure transform of page text into records.
//
// Failures are coded: EMALFORMED when a required sentinel never appears,
// ENOTFOUND when a requested category is absent, EEMPTY when a well-formed
// page yields nothing. Records are never returned alongside an error.
type RecordExtractor interface {
	// AttributeTable extracts one attribute-per-column table fragment.
	// shiftHeader maps data cell i to header i+1.
	AttributeTable(fragment string, shiftHeader bool) ([]Record, error)

	// AttributeTables extracts every wikitable on a page as an attribute table.
	AttributeTables(page string, shiftHeader bool) ([]Record, error)

	// WinNominationTable extracts one year-winner-nominees table fragment.
	WinNominationTable(fragment string) ([]Record, error)

	// WinNominationTables extracts every wikitable on a page as a
	// year-winner-nominees table.
	WinNominationTables(page string) ([]Record, error)

	// CategoryYear extracts the ballot list under the header labelled
	// category on a ceremony-year page.
	CategoryYear(page string, category string, importance Importance) ([]Person, error)

	// ListTable extracts the first sortable wikitable on a page with one
	// record per row keyed by the header row.
	ListTable(page string) ([]Record, error)

	// CountWins counts the bold (winning) list items that mention title.
	CountWins(page string, title string) (int, error)

	// Age returns the current age given in a biography page's infobox.
	Age(page string) (int, error)

	// Starring returns the names in a film page's "Starring" infobox cell.
	Starring(page string) ([]string, error)
}
