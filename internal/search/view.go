package search

import "github.com/sais189/travelex/internal/models"

const (
	// MaxResults caps how many matches the overlay lists.
	MaxResults = 5
	// NoResultsMessage is shown when a query matches nothing.
	NoResultsMessage = "No destinations found"
)

// ViewAll is the "view all N" affordance shown when matches overflow.
type ViewAll struct {
	Count int    `json:"count"`
	Path  string `json:"path"`
}

// View is everything needed to draw the search input and its overlay.
type View struct {
	Query     string               `json:"query"`
	Country   string               `json:"country"`
	Countries []string             `json:"countries"`
	Open      bool                 `json:"open"`
	Results   []models.Destination `json:"results"`
	Matches   int                  `json:"matches"`
	ViewAll   *ViewAll             `json:"viewAll,omitempty"`
	Message   string               `json:"message,omitempty"`
	BrowseAll bool                 `json:"browseAll"`
	Placement *Placement           `json:"placement,omitempty"`
}

// render builds the overlay contents for an open widget.
func render(v *View, destinations []models.Destination, query, country string, placement Placement) {
	matches := Filter(destinations, query, country)
	v.Matches = len(matches)

	shown := matches
	if len(matches) > MaxResults {
		shown = matches[:MaxResults]
		v.ViewAll = &ViewAll{Count: len(matches), Path: ListingPath}
	}
	v.Results = shown

	if len(matches) == 0 {
		v.Message = NoResultsMessage
		// Nothing to browse when the backend returned no records at all.
		v.BrowseAll = len(destinations) > 0
	}
	v.Placement = &placement
}
