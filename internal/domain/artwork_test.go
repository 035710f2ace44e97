package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestArtwork_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Untitled", Artwork{ID: 1}.DisplayTitle())
	assert.Equal(t, "Nighthawks", Artwork{ID: 2, Title: "Nighthawks"}.DisplayTitle())
}

func TestFormatYear(t *testing.T) {
	assert.Equal(t, "", FormatYear(nil))
	assert.Equal(t, "1942", FormatYear(intPtr(1942)))
	assert.Equal(t, "-500", FormatYear(intPtr(-500)))
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		page  Page
		pages int
	}{
		{"exact multiple", Page{Limit: 12, Total: 24}, 2},
		{"remainder", Page{Limit: 12, Total: 25}, 3},
		{"empty catalog", Page{Limit: 12, Total: 0}, 0},
		{"zero limit", Page{Limit: 0, Total: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pages, tt.page.TotalPages())
		})
	}
}

func TestPage_IDs(t *testing.T) {
	p := Page{Artworks: []Artwork{{ID: 7}, {ID: 3}, {ID: 9}}}
	assert.Equal(t, []int{7, 3, 9}, p.IDs())
	assert.Equal(t, 3, p.Len())
}
