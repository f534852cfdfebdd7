package repository

// DefaultPageSize matches the nine-card listing grid.
const DefaultPageSize = 9

// ListFilter carries the common listing inputs: free-text search, the
// geo scope and pagination. The most specific geo level supplied wins;
// broader levels are ignored once a narrower one is present.
type ListFilter struct {
	Search     string
	CountryID  uint
	CityID     uint
	AreaID     uint
	HospitalID uint
	Page       int
	PageSize   int
}

// Normalize folds malformed pagination inputs back to the defaults.
// Non-positive values are never an error.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

// Offset returns the row offset for the normalized page.
func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
