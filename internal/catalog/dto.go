package catalog

// APIResponse is the envelope returned by the artworks endpoint
type APIResponse struct {
	Pagination Pagination   `json:"pagination"`
	Data       []ArtworkDTO `json:"data"`
}

// Pagination carries the catalog-wide paging counters
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ArtworkDTO mirrors one record under "data". Text fields are nullable upstream.
type ArtworkDTO struct {
	ID            int     `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}
