package itinerary

import (
	"strconv"
	"strings"
)

// Build parses section-tagged text into a model. The only error is
// ErrNoSectionsDetected; lines that fit no grammar are dropped.
func Build(text string) (Model, error) {
	sections, err := Split(text)
	if err != nil {
		return Model{}, err
	}

	return BuildFromSections(Normalize(sections)), nil
}

func BuildFromSections(sections Sections) Model {
	model := New()

	model.MainHeader = buildMainHeader(sections[SectionMainHeader])
	model.Passengers = scan[Passenger](newPassengerScanner(), sections[SectionWhoTraveling])
	model.Overview = buildOverview(sections[SectionTripOverview])
	model.Days = scan[Day](newDayScanner(), sections[SectionDetailedItinerary])
	model.Hotels = scan[Hotel](newHotelScanner(), sections[SectionHotelInfo])
	model.PracticalInfo = buildList(sections[SectionPracticalInfo])
	model.Emergency = buildList(sections[SectionEmergencyContacts])

	return model
}

func buildMainHeader(lines []string) MainHeader {
	header := MainHeader{}
	for _, line := range lines {
		key, value, ok := matchPair(optionalHyphenPair, line)
		if !ok {
			continue
		}
		header.Set(mainHeaderFields.Canonical(key), value)
	}
	return header
}

func buildOverview(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if part := stripListMarker(line); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func buildList(lines []string) []string {
	out := []string{}
	for _, line := range lines {
		if entry := stripListMarker(line); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// scanState is the state of a section grammar that accumulates one entity at a time.
type scanState int

const (
	noEntityOpen scanState = iota
	entityOpen
)

type scanner[T any] interface {
	step(line string)
	finish() []T
}

func scan[T any](s scanner[T], lines []string) []T {
	for _, line := range lines {
		s.step(line)
	}
	return s.finish()
}

// passengerScanner opens a passenger on a name line and attaches key/value
// lines to it until the next name line.
type passengerScanner struct {
	state   scanState
	current Passenger
	done    []Passenger
}

func newPassengerScanner() *passengerScanner {
	return &passengerScanner{done: []Passenger{}}
}

func (s *passengerScanner) step(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if key, value, ok := matchPair(optionalHyphenPair, trimmed); ok {
		if s.state == entityOpen {
			s.current.Set(passengerFields.Canonical(key), value)
		}
		return
	}

	name, ok := passengerName(trimmed)
	if !ok {
		return
	}

	s.close()
	s.current = Passenger{Name: name}
	s.state = entityOpen
}

func (s *passengerScanner) close() {
	if s.state == entityOpen {
		s.done = append(s.done, s.current)
	}
	s.current = Passenger{}
	s.state = noEntityOpen
}

func (s *passengerScanner) finish() []Passenger {
	s.close()
	return s.done
}

func passengerName(line string) (string, bool) {
	m := passengerTitleLine.FindStringSubmatch(line)
	if m == nil {
		m = hyphenLine.FindStringSubmatch(line)
	}
	if m == nil {
		return "", false
	}

	name := strings.TrimSuffix(strings.TrimSpace(m[1]), ":")
	return strings.TrimSpace(name), true
}

// dayScanner pushes a day as soon as its header is read; later lines edit the
// last pushed day.
type dayScanner struct {
	state scanState
	days  []Day
}

func newDayScanner() *dayScanner {
	return &dayScanner{days: []Day{}}
}

func (s *dayScanner) step(line string) {
	if m := dayHeaderLine.FindStringSubmatch(line); m != nil {
		number, err := strconv.Atoi(m[1])
		if err != nil {
			number = 0
		}

		s.days = append(s.days, Day{
			Number: number,
			Title:  strings.TrimSpace(m[2]),
			Items:  []DayItem{},
			Maps:   []RouteMap{},
		})
		s.state = entityOpen
		return
	}

	if s.state == noEntityOpen {
		return
	}

	day := &s.days[len(s.days)-1]

	if m := dayDateLine.FindStringSubmatch(line); m != nil {
		day.Date = strings.TrimSpace(m[1])
		return
	}

	if m := timedItemLine.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[2]); text != "" {
			day.Items = append(day.Items, DayItem{
				Time: strings.Replace(m[1], "h", ":", 1),
				Text: text,
			})
		}
		return
	}

	if m := includesLine.FindStringSubmatch(line); m != nil {
		day.Includes = strings.TrimSpace(m[1])
		return
	}

	if m := routeMapLine.FindStringSubmatch(line); m != nil {
		origin, destination := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if origin != "" && destination != "" {
			day.Maps = append(day.Maps, RouteMap{Origin: origin, Destination: destination})
		}
		return
	}

	if m := hyphenLine.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[1]); text != "" {
			day.Items = append(day.Items, DayItem{Text: text})
		}
	}
}

func (s *dayScanner) finish() []Day {
	s.state = noEntityOpen
	return s.days
}

// hotelScanner keeps one hotel open between "- HOTEL:" lines. The first hotel
// of the section is always committed, later ones only when they hold a field
// besides the name.
type hotelScanner struct {
	state   scanState
	current Hotel
	opened  int
	done    []Hotel
}

func newHotelScanner() *hotelScanner {
	return &hotelScanner{done: []Hotel{}}
}

func (s *hotelScanner) step(line string) {
	if m := hotelHeaderLine.FindStringSubmatch(line); m != nil {
		s.commit()

		parts := hotelNameStars.Split(strings.TrimSpace(m[1]), 2)
		hotel := Hotel{Name: strings.TrimSpace(parts[0]), Stays: []HotelStay{}}
		if len(parts) > 1 {
			hotel.Stars = strings.TrimSpace(parts[1])
		}

		s.current = hotel
		s.state = entityOpen
		s.opened++
		return
	}

	if s.state == noEntityOpen {
		return
	}

	key, value, ok := matchPair(hyphenPair, line)
	if !ok {
		return
	}

	field, ok := hotelFields.Lookup(key)
	if !ok {
		return
	}

	h := &s.current
	switch field.Key {
	case FieldAddress:
		h.Address = value
	case FieldPhone:
		h.Phone = value
	case FieldEmail:
		h.Email = value
	case FieldReservationNumber:
		h.ReservationNumber = value
	case FieldRoomType:
		h.RoomType = value
	case FieldServices:
		h.Services = value
	case FieldCheckIn:
		if stay := lastStay(h); stay != nil && stay.CheckIn == "" && stay.CheckOut == "" {
			stay.CheckIn = value
			return
		}
		h.Stays = append(h.Stays, HotelStay{CheckIn: value})
	case FieldCheckOut:
		openStay(h).CheckOut = value
	case FieldNights:
		openStay(h).Nights = value
	}
}

func (s *hotelScanner) commit() {
	if s.state == entityOpen && (s.opened == 1 || s.current.populated()) {
		s.done = append(s.done, s.current)
	}
	s.current = Hotel{}
	s.state = noEntityOpen
}

func (s *hotelScanner) finish() []Hotel {
	s.commit()
	return s.done
}

func lastStay(h *Hotel) *HotelStay {
	if len(h.Stays) == 0 {
		return nil
	}
	return &h.Stays[len(h.Stays)-1]
}

// openStay returns the most recent stay, starting an empty one if there is none.
func openStay(h *Hotel) *HotelStay {
	if len(h.Stays) == 0 {
		h.Stays = append(h.Stays, HotelStay{})
	}
	return lastStay(h)
}
