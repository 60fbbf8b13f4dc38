package schema

import "bitbucket.org/crgw/itinerary-hub/internal/itinerary"

type SectionsRequestParams struct {
	Text string `json:"text" binding:"required"`
}

// SectionsQuery is read from the query string. Raw skips normalization so
// only detected sections are returned.
type SectionsQuery struct {
	Raw bool `form:"raw" url:"raw,omitempty"`
}

type SectionsResponse struct {
	Sections itinerary.Sections `json:"sections"`
}

type BuildRequestParams struct {
	Text string `json:"text" binding:"required"`
}

type BuildResponse struct {
	Itinerary itinerary.Model `json:"itinerary"`
	// Text is the canonical rendering of Itinerary in the requested language.
	Text string `json:"text"`
}

type SerializeRequestParams struct {
	Itinerary *itinerary.Model `json:"itinerary" binding:"required"`
}

type SerializeResponse struct {
	Text string `json:"text"`
}

type TranslateRequestParams struct {
	Text string `json:"text" binding:"required"`
}

type TranslateResponse struct {
	Language itinerary.Language `json:"language"`
	Text     string             `json:"text"`
}
