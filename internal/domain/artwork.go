package domain

import "strconv"

// Artwork is a single catalog record. Values are immutable once fetched;
// refetching the same ID yields identical contents.
type Artwork struct {
	ID            int    // Catalog identifier, stable across fetches
	Title         string // May be empty
	PlaceOfOrigin string
	ArtistDisplay string
	Inscriptions  string
	DateStart     *int // nil when the catalog has no start year
	DateEnd       *int // nil when the catalog has no end year
}

// DisplayTitle returns the title, or "Untitled" when the catalog has none
func (a Artwork) DisplayTitle() string {
	if a.Title == "" {
		return "Untitled"
	}
	return a.Title
}

// FormatYear renders an optional year for table cells
func FormatYear(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

// Page is one fixed-size batch of artworks plus the catalog-wide total
type Page struct {
	Number   int // 1-based
	Limit    int
	Artworks []Artwork
	Total    int // Total records reported by the catalog
}

// TotalPages returns how many pages of Limit records cover Total
func (p Page) TotalPages() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// IDs returns the artwork IDs in page order
func (p Page) IDs() []int {
	ids := make([]int, len(p.Artworks))
	for i, a := range p.Artworks {
		ids[i] = a.ID
	}
	return ids
}

// Len returns the number of artworks on the page
func (p Page) Len() int {
	return len(p.Artworks)
}
