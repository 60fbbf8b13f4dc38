package itinerary

import (
	"encoding/json"
	"sort"
)

type MainHeader struct {
	Title         string
	Subtitle      string
	Agency        string
	Nationality   string
	AgencyContact string
	// Contact is the legacy name of AgencyContact.
	Contact string
	Extra   map[string]string
}

// field returns the known field stored under a canonical key, nil for extension keys.
func (h *MainHeader) field(key string) *string {
	switch key {
	case FieldTitle:
		return &h.Title
	case FieldSubtitle:
		return &h.Subtitle
	case FieldAgency:
		return &h.Agency
	case FieldNationality:
		return &h.Nationality
	case FieldAgencyContact:
		return &h.AgencyContact
	case FieldContact:
		return &h.Contact
	}
	return nil
}

func (h *MainHeader) assign(key, value string) {
	if f := h.field(key); f != nil {
		*f = value
		return
	}
	if h.Extra == nil {
		h.Extra = make(map[string]string)
	}
	h.Extra[key] = value
}

// Set stores value under a canonical key. Setting agency_contact also sets contact.
func (h *MainHeader) Set(key, value string) {
	h.assign(key, value)
	if key == FieldAgencyContact {
		h.Contact = value
	}
}

func (h MainHeader) MarshalJSON() ([]byte, error) {
	return json.Marshal(flatten(h.Extra, mainHeaderFields, h.field))
}

func (h *MainHeader) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*h = MainHeader{}
	for key, value := range raw {
		h.assign(key, value)
	}

	return nil
}

type Passenger struct {
	Name        string
	Nationality string
	Passport    string
	DateOfBirth string
	Room        string
	Extra       map[string]string
}

func (p *Passenger) field(key string) *string {
	switch key {
	case FieldName:
		return &p.Name
	case FieldNationality:
		return &p.Nationality
	case FieldPassport:
		return &p.Passport
	case FieldDateOfBirth:
		return &p.DateOfBirth
	case FieldRoom:
		return &p.Room
	}
	return nil
}

func (p *Passenger) Set(key, value string) {
	if f := p.field(key); f != nil {
		*f = value
		return
	}
	if p.Extra == nil {
		p.Extra = make(map[string]string)
	}
	p.Extra[key] = value
}

func (p Passenger) MarshalJSON() ([]byte, error) {
	return json.Marshal(flatten(p.Extra, passengerFields, p.field))
}

func (p *Passenger) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Passenger{}
	for key, value := range raw {
		p.Set(key, value)
	}

	return nil
}

// flatten merges known fields over the extension map, the shape the UI reads.
func flatten(extra map[string]string, fields FieldSet, lookup func(string) *string) map[string]string {
	out := make(map[string]string, len(extra)+len(fields))
	for key, value := range extra {
		out[key] = value
	}
	for _, f := range fields {
		if value := lookup(f.Key); value != nil && *value != "" {
			out[f.Key] = *value
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type DayItem struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

type RouteMap struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type Day struct {
	Number   int        `json:"number"`
	Title    string     `json:"title"`
	Date     string     `json:"date"`
	Items    []DayItem  `json:"items"`
	Includes string     `json:"includes,omitempty"`
	Maps     []RouteMap `json:"maps"`
}

type HotelStay struct {
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Nights   string `json:"nights,omitempty"`
}

type Hotel struct {
	Name              string      `json:"name,omitempty"`
	Stars             string      `json:"stars,omitempty"`
	Address           string      `json:"address,omitempty"`
	Phone             string      `json:"phone,omitempty"`
	Email             string      `json:"email,omitempty"`
	ReservationNumber string      `json:"reservation_number,omitempty"`
	RoomType          string      `json:"room_type,omitempty"`
	Services          string      `json:"services,omitempty"`
	Stays             []HotelStay `json:"stays"`
}

// populated reports whether the hotel carries anything besides its name.
func (h Hotel) populated() bool {
	return h.Stars != "" ||
		h.Address != "" ||
		h.Phone != "" ||
		h.Email != "" ||
		h.ReservationNumber != "" ||
		h.RoomType != "" ||
		h.Services != "" ||
		len(h.Stays) > 0
}

// PortalLink is maintained by editors only, text never carries it.
type PortalLink struct {
	Country string `json:"country"`
	URL     string `json:"url"`
}

type Model struct {
	MainHeader    MainHeader   `json:"mainHeader"`
	Passengers    []Passenger  `json:"passengers"`
	Overview      string       `json:"overview"`
	Days          []Day        `json:"days"`
	Hotels        []Hotel      `json:"hotels"`
	PracticalInfo []string     `json:"practicalInfo"`
	Emergency     []string     `json:"emergency"`
	PortalLinks   []PortalLink `json:"portalLinks,omitempty"`
}

// New returns an empty model with every list initialized.
func New() Model {
	return Model{
		Passengers:    []Passenger{},
		Days:          []Day{},
		Hotels:        []Hotel{},
		PracticalInfo: []string{},
		Emergency:     []string{},
	}
}
