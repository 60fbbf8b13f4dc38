package itinerary

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Languages lists every language text can be rendered in.
var Languages = []Language{English, Spanish}

type SectionKey string

const (
	SectionMainHeader        SectionKey = "MAIN_HEADER"
	SectionWhoTraveling      SectionKey = "WHO_TRAVELING"
	SectionTripOverview      SectionKey = "TRIP_OVERVIEW"
	SectionDetailedItinerary SectionKey = "DETAILED_ITINERARY"
	SectionHotelInfo         SectionKey = "HOTEL_INFO"
	SectionPracticalInfo     SectionKey = "PRACTICAL_INFO"
	SectionEmergencyContacts SectionKey = "EMERGENCY_CONTACTS"
)

// SectionOrder is the order sections are written in.
var SectionOrder = []SectionKey{
	SectionMainHeader,
	SectionWhoTraveling,
	SectionTripOverview,
	SectionDetailedItinerary,
	SectionHotelInfo,
	SectionPracticalInfo,
	SectionEmergencyContacts,
}

// Label is the English and Spanish spelling of one marker or field label.
type Label struct {
	En string
	Es string
}

func (l Label) In(lang Language) string {
	if lang == Spanish {
		return l.Es
	}
	return l.En
}

var sectionMarkers = map[SectionKey]Label{
	SectionMainHeader: {
		En: "--- MAIN HEADER ---",
		Es: "--- ENCABEZADO PRINCIPAL ---",
	},
	SectionWhoTraveling: {
		En: "--- SECTION: Who is Traveling? ---",
		Es: "--- SECCIÓN: ¿Quién Viaja? ---",
	},
	SectionTripOverview: {
		En: "--- SECTION: Trip Overview ---",
		Es: "--- SECCIÓN: Resumen del Viaje ---",
	},
	SectionDetailedItinerary: {
		En: "--- SECTION: Detailed Itinerary ---",
		Es: "--- SECCIÓN: Itinerario Detallado ---",
	},
	SectionHotelInfo: {
		En: "--- SECTION: Hotel Information ---",
		Es: "--- SECCIÓN: Información sobre los Hoteles ---",
	},
	SectionPracticalInfo: {
		En: "--- SECTION: Essential Practical Information ---",
		Es: "--- SECCIÓN: Información Práctica Esencial ---",
	},
	SectionEmergencyContacts: {
		En: "--- SECTION: Emergency and Coordination Contacts ---",
		Es: "--- SECCIÓN: Contactos de Emergencia y Coordinación ---",
	},
}

// markerIndex maps every marker line, in either language, to its section.
var markerIndex = func() map[string]SectionKey {
	index := make(map[string]SectionKey, 2*len(sectionMarkers))
	for key, marker := range sectionMarkers {
		index[marker.En] = key
		index[marker.Es] = key
	}
	return index
}()

func sectionForMarker(line string) (SectionKey, bool) {
	key, ok := markerIndex[line]
	return key, ok
}

func SectionMarker(key SectionKey, lang Language) string {
	return sectionMarkers[key].In(lang)
}

// Canonical field keys.
const (
	FieldTitle         = "title"
	FieldSubtitle      = "subtitle"
	FieldAgency        = "agency"
	FieldNationality   = "nationality"
	FieldAgencyContact = "agency_contact"
	FieldContact       = "contact"

	FieldName        = "name"
	FieldPassport    = "passport"
	FieldDateOfBirth = "date_of_birth"
	FieldRoom        = "room"

	FieldDate     = "date"
	FieldIncludes = "includes"

	FieldAddress           = "address"
	FieldPhone             = "phone"
	FieldEmail             = "email"
	FieldReservationNumber = "reservation_number"
	FieldRoomType          = "room_type"
	FieldServices          = "services"
	FieldCheckIn           = "check_in"
	FieldCheckOut          = "check_out"
	FieldNights            = "nights"
)

// Field describes one logical field: the labels written for it and every form
// accepted when reading it back.
type Field struct {
	Key   string
	Label Label
	// Synonyms are extra normalized keys accepted on input.
	Synonyms []string
	// Fragments match any normalized key containing them.
	Fragments []string

	names []string
}

type FieldSet []Field

func newFieldSet(fields ...Field) FieldSet {
	for i := range fields {
		f := &fields[i]
		f.names = append([]string{f.Key, normalizeKey(f.Label.En), normalizeKey(f.Label.Es)}, f.Synonyms...)
	}
	return fields
}

// Lookup resolves a raw label to its field. Exact names win over fragments.
func (s FieldSet) Lookup(raw string) (Field, bool) {
	key := normalizeKey(raw)

	for _, f := range s {
		for _, name := range f.names {
			if key == name {
				return f, true
			}
		}
	}

	for _, f := range s {
		for _, fragment := range f.Fragments {
			if strings.Contains(key, fragment) {
				return f, true
			}
		}
	}

	return Field{}, false
}

// Canonical resolves a raw label to its canonical key, or the normalized label
// itself when no field claims it.
func (s FieldSet) Canonical(raw string) string {
	if f, ok := s.Lookup(raw); ok {
		return f.Key
	}
	return normalizeKey(raw)
}

func (s FieldSet) Label(key string, lang Language) string {
	for _, f := range s {
		if f.Key == key {
			return f.Label.In(lang)
		}
	}
	return extraLabel(key)
}

var mainHeaderFields = newFieldSet(
	Field{Key: FieldTitle, Label: Label{En: "Title", Es: "Titulo"}, Synonyms: []string{"título"}},
	Field{Key: FieldSubtitle, Label: Label{En: "Subtitle", Es: "Subtitulo"}, Synonyms: []string{"subtítulo"}},
	Field{Key: FieldAgency, Label: Label{En: "Agency", Es: "Agencia"}},
	Field{Key: FieldNationality, Label: Label{En: "Nationality", Es: "Nacionalidad"}},
	Field{Key: FieldAgencyContact, Label: Label{En: "Agency Contact", Es: "Contacto de la Agencia"}, Synonyms: []string{"contacto_agencia"}},
	Field{Key: FieldContact, Label: Label{En: "Contact", Es: "Contacto"}},
)

var passengerFields = newFieldSet(
	Field{Key: FieldName, Label: Label{En: "Name", Es: "Nombre"}},
	Field{Key: FieldNationality, Label: Label{En: "Nationality", Es: "Nacionalidad"}},
	Field{Key: FieldPassport, Label: Label{En: "Passport", Es: "Pasaporte"}},
	Field{Key: FieldDateOfBirth, Label: Label{En: "Date of Birth", Es: "Fecha de Nacimiento"}},
	Field{Key: FieldRoom, Label: Label{En: "Room", Es: "Habitación"}, Synonyms: []string{"habitacion"}},
)

var dayFields = newFieldSet(
	Field{Key: FieldDate, Label: Label{En: "Date", Es: "Fecha"}},
	Field{Key: FieldIncludes, Label: Label{En: "Included services", Es: "Servicios incluidos"}},
)

// Order matters for fragments: the first one contained in a label wins, so a
// label naming both a room and a reservation is a room type.
var hotelFields = newFieldSet(
	Field{Key: FieldAddress, Label: Label{En: "Address", Es: "Dirección"}, Synonyms: []string{"direccion"}},
	Field{Key: FieldPhone, Label: Label{En: "Phone", Es: "Teléfono"}, Synonyms: []string{"telefono"}},
	Field{Key: FieldEmail, Label: Label{En: "Email", Es: "Email"}, Synonyms: []string{"correo"}},
	Field{Key: FieldRoomType, Label: Label{En: "Room Type", Es: "Tipo de Habitación"}, Fragments: []string{"habitación", "habitacion"}},
	Field{Key: FieldReservationNumber, Label: Label{En: "Reservation number", Es: "Número de Reserva"}, Fragments: []string{"reserva"}},
	Field{Key: FieldServices, Label: Label{En: "Services", Es: "Servicios"}},
	Field{Key: FieldCheckIn, Label: Label{En: "Check In", Es: "Check In"}, Fragments: []string{"check_in", "check-in", "checkin"}},
	Field{Key: FieldCheckOut, Label: Label{En: "Check Out", Es: "Check Out"}, Fragments: []string{"check_out", "check-out", "checkout"}},
	Field{Key: FieldNights, Label: Label{En: "Duration of stay", Es: "Duración de la Estancia"}, Synonyms: []string{"noches"}, Fragments: []string{"stay", "estancia"}},
)

// Markers that are not key/value labels.
var (
	dayKeyword         = Label{En: "DAY", Es: "DÍA"}
	dayKeywordSynonyms = []string{"DIA", "JOUR"}

	passengerTitle         = Label{En: "Title", Es: "Titulo"}
	passengerTitleSynonyms = []string{"Título"}
	unnamedPassenger       = Label{En: "New Passenger", Es: "Nuevo Pasajero"}

	hotelKeyword         = Label{En: "HOTEL", Es: "HOTEL"}
	hotelKeywordSynonyms = []string{"HÔTEL"}

	// Stays after the first are written with this prefix.
	laterStayPrefix = Label{En: "Second", Es: "Segundo"}

	routeMapKeyword = "MAPA"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeKey lower-cases a label and joins its words with underscores.
func normalizeKey(raw string) string {
	key := cases.Lower(language.Und).String(strings.TrimSpace(raw))
	key = whitespaceRun.ReplaceAllString(key, "_")
	return strings.TrimLeft(key, "-")
}

// extraLabel renders an extension key the way it reads in text: "emergency_phone" -> "Emergency Phone".
func extraLabel(key string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(key, "_", " "))
}
