package client

import (
	"fmt"
	"strconv"
)

// Variant is one playable encoding of a live channel. Resolution and
// Bandwidth carry the playlist's attribute values verbatim.
type Variant struct {
	Resolution string `json:"resolution"`
	Bandwidth  string `json:"bandwidth"`
	Link       string `json:"link"`
	// Type is the display label: "best" for the source rendition,
	// "<rank>p" otherwise.
	Type string `json:"type"`
}

// Item is the simplified per-variant display record.
type Item struct {
	Quality    string `json:"quality"`
	Resolution string `json:"resolution"`
	Bitrate    string `json:"bitrate"`
}

// ItemOf builds the display record for v.
func ItemOf(v Variant) Item {
	return Item{
		Quality:    v.Type,
		Resolution: v.Resolution,
		Bitrate:    v.Bandwidth,
	}
}

// String renders the item as "[quality] resolution @ kbps". The bitrate
// is reinterpreted as a number and divided by 1024 for display only.
func (i Item) String() string {
	kbps, err := strconv.ParseFloat(i.Bitrate, 64)
	if err != nil {
		kbps = 0
	}
	return fmt.Sprintf("[%s] %10s @ %8.2f kbps", i.Quality, i.Resolution, kbps/1024)
}
