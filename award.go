package awardscan

import "context"

// AwardService fetches award pages and extracts their records.
// Fetch failures are reported as EUNAVAILABLE and pages missing from the
// portal as ENOTFOUND; extraction errors pass through unchanged.
type AwardService interface {
	// AttributeTables returns the decade-table records of a category page,
	// e.g. "Best_Picture" (shiftHeader false) or "Original_Screenplay" (true).
	AttributeTables(ctx context.Context, category string, shiftHeader bool) ([]Record, error)

	// WinNominations returns the year-winner-nominees records of a category
	// page such as "Best_Director".
	WinNominations(ctx context.Context, category string) ([]Record, error)

	// CategoryYear returns the nominees listed under category on the page of
	// the given ceremony year.
	CategoryYear(ctx context.Context, category string, year int, importance Importance) ([]Person, error)

	// CategoryYears runs CategoryYear for several years concurrently.
	CategoryYears(ctx context.Context, category string, years []int, importance Importance) (map[int][]Person, error)

	// ListTable returns the rows of the sortable list table found on the
	// list page matching term, e.g. "Best_Foreign_Language_Film".
	ListTable(ctx context.Context, term string) ([]Record, error)

	// WinCount returns how many awards title won at the given year's ceremony.
	WinCount(ctx context.Context, title string, year int) (int, error)

	// Age returns the current age of the person whose page is at personLink.
	Age(ctx context.Context, personLink string) (int, error)

	// Starring returns the cast listed on the film page at movieLink.
	Starring(ctx context.Context, movieLink string) ([]string, error)
}
