package models

import "time"

// AdPosition is the page slot an advertisement is eligible to appear in.
type AdPosition string

const (
	AdHeader    AdPosition = "Header"
	AdSidebar   AdPosition = "Sidebar"
	AdInContent AdPosition = "In-Content"
)

// AdPositions lists every placement in page order.
var AdPositions = []AdPosition{AdHeader, AdSidebar, AdInContent}

// Valid reports whether p is a known placement.
func (p AdPosition) Valid() bool {
	switch p {
	case AdHeader, AdSidebar, AdInContent:
		return true
	}
	return false
}

// AdModel is an advertisement inventory entry.
type AdModel struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Position  AdPosition `json:"position"`
	ImageURL  string     `json:"image_url"`
	LinkURL   string     `json:"link_url"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created"`
}
