package catalog

import "github.com/mmcdole/easel/internal/domain"

// MapArtworks converts API records to domain artworks, preserving order
func MapArtworks(dtos []ArtworkDTO) []domain.Artwork {
	artworks := make([]domain.Artwork, 0, len(dtos))
	for _, d := range dtos {
		artworks = append(artworks, MapArtwork(d))
	}
	return artworks
}

// MapArtwork converts a single API record
func MapArtwork(d ArtworkDTO) domain.Artwork {
	return domain.Artwork{
		ID:            d.ID,
		Title:         deref(d.Title),
		PlaceOfOrigin: deref(d.PlaceOfOrigin),
		ArtistDisplay: deref(d.ArtistDisplay),
		Inscriptions:  deref(d.Inscriptions),
		DateStart:     d.DateStart,
		DateEnd:       d.DateEnd,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
