package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders the model as section-tagged text in lang; unknown
// languages render in English. Values are written as-is, so values holding
// ':', '-', '[' or ']' may read back differently.
func Serialize(model Model, lang Language) string {
	if lang != Spanish {
		lang = English
	}

	w := &textWriter{lang: lang}

	w.mainHeader(model.MainHeader)
	w.passengers(model.Passengers)
	w.overview(model.Overview)
	w.days(model.Days)
	w.hotels(model.Hotels)
	w.list(SectionPracticalInfo, model.PracticalInfo)
	w.blank()
	w.list(SectionEmergencyContacts, model.Emergency)

	return w.String()
}

type textWriter struct {
	strings.Builder
	lang Language
}

func (w *textWriter) line(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}

func (w *textWriter) blank() {
	w.WriteByte('\n')
}

func (w *textWriter) marker(key SectionKey) {
	w.line("%s", SectionMarker(key, w.lang))
}

// pairPrefix is written before key/value lines that are optional-hyphen in the grammar.
func (w *textWriter) pairPrefix() string {
	if w.lang == Spanish {
		return ""
	}
	return "- "
}

func (w *textWriter) mainHeader(h MainHeader) {
	w.marker(SectionMainHeader)

	for _, f := range mainHeaderFields {
		if f.Key == FieldContact && h.AgencyContact != "" {
			continue
		}
		if value := *h.field(f.Key); value != "" {
			w.line("%s%s: %s", w.pairPrefix(), f.Label.In(w.lang), value)
		}
	}
	for _, key := range sortedKeys(h.Extra) {
		w.line("%s%s: %s", w.pairPrefix(), extraLabel(key), h.Extra[key])
	}

	w.blank()
}

func (w *textWriter) passengers(passengers []Passenger) {
	w.marker(SectionWhoTraveling)

	for _, p := range passengers {
		name := p.Name
		if name == "" {
			name = unnamedPassenger.In(w.lang)
		}
		if w.lang == Spanish {
			w.line("[%s %s]", passengerTitle.Es, name)
		} else {
			w.line("- %s", name)
		}

		for _, f := range passengerFields {
			if f.Key == FieldName {
				continue
			}
			if value := *p.field(f.Key); value != "" {
				w.line("  %s%s: %s", w.pairPrefix(), f.Label.In(w.lang), value)
			}
		}
		for _, key := range sortedKeys(p.Extra) {
			w.line("  %s%s: %s", w.pairPrefix(), extraLabel(key), p.Extra[key])
		}
	}

	w.blank()
}

func (w *textWriter) overview(overview string) {
	w.marker(SectionTripOverview)
	if overview != "" {
		w.line("%s%s", w.pairPrefix(), overview)
	}
	w.blank()
}

func (w *textWriter) days(days []Day) {
	w.marker(SectionDetailedItinerary)

	for _, d := range days {
		w.line("%s %s: %s", dayKeyword.In(w.lang), strconv.Itoa(d.Number), d.Title)
		if d.Date != "" {
			w.line("%s: %s", dayFields.Label(FieldDate, w.lang), d.Date)
		}
		for _, item := range d.Items {
			if item.Time != "" {
				w.line("- %s: %s", item.Time, item.Text)
			} else {
				w.line("- %s", item.Text)
			}
		}
		if d.Includes != "" {
			w.line("%s%s: %s", w.pairPrefix(), dayFields.Label(FieldIncludes, w.lang), d.Includes)
		}
		for _, m := range d.Maps {
			w.line("[%s: %s - %s]", routeMapKeyword, m.Origin, m.Destination)
		}
		w.blank()
	}
}

func (w *textWriter) hotels(hotels []Hotel) {
	w.marker(SectionHotelInfo)

	for _, h := range hotels {
		if h.Stars != "" {
			w.line("- %s: %s - %s", hotelKeyword.In(w.lang), h.Name, h.Stars)
		} else {
			w.line("- %s: %s", hotelKeyword.In(w.lang), h.Name)
		}

		w.hotelField(FieldAddress, "", h.Address)
		w.hotelField(FieldPhone, "", h.Phone)
		w.hotelField(FieldEmail, "", h.Email)
		w.hotelField(FieldReservationNumber, "", h.ReservationNumber)
		w.hotelField(FieldRoomType, "", h.RoomType)

		for i, stay := range h.Stays {
			prefix := ""
			if i > 0 {
				prefix = laterStayPrefix.In(w.lang) + " "
			}
			w.hotelField(FieldCheckIn, prefix, stay.CheckIn)
			w.hotelField(FieldCheckOut, prefix, stay.CheckOut)
			w.hotelField(FieldNights, "", stay.Nights)
		}

		w.hotelField(FieldServices, "", h.Services)
		w.blank()
	}
}

func (w *textWriter) hotelField(key, prefix, value string) {
	if value == "" {
		return
	}
	w.line("- %s%s: %s", prefix, hotelFields.Label(key, w.lang), value)
}

func (w *textWriter) list(key SectionKey, entries []string) {
	w.marker(key)
	for _, entry := range entries {
		w.line("- %s", entry)
	}
}
