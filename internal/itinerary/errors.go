package itinerary

import "errors"

// ErrNoSectionsDetected is returned when the text carries no section header line at all.
var ErrNoSectionsDetected = errors.New("no sections detected, missing headers?")
