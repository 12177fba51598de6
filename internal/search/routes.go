package search

import "fmt"

// ListingPath is the unfiltered destination listing.
const ListingPath = "/destinations"

// DetailPath is the booking page of one destination.
func DetailPath(id int) string {
	return fmt.Sprintf("/booking/%d", id)
}

// Navigator receives navigation requests. Calls are fire-and-forget and are
// made while the widget serializes notifications, so Navigate must not call
// back into the widget's mutators (View and Open are safe).
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }
