package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSetLookup(t *testing.T) {
	t.Run("should accept every label it writes", func(t *testing.T) {
		sets := map[string]FieldSet{
			"main header": mainHeaderFields,
			"passenger":   passengerFields,
			"day":         dayFields,
			"hotel":       hotelFields,
		}

		for name, set := range sets {
			for _, f := range set {
				for _, lang := range Languages {
					field, ok := set.Lookup(f.Label.In(lang))

					assert.True(t, ok, "%s %s %s", name, f.Key, lang)
					assert.Equal(t, f.Key, field.Key, "%s %s %s", name, f.Key, lang)
				}
			}
		}
	})

	t.Run("should resolve hotel synonyms and fragments", func(t *testing.T) {
		tests := []struct {
			raw      string
			expected string
		}{
			{"Segundo Check In", FieldCheckIn},
			{"second check-out", FieldCheckOut},
			{"Número de reserva", FieldReservationNumber},
			{"Reservation Code", FieldReservationNumber},
			{"tipo de habitacion", FieldRoomType},
			{"Habitación reservada", FieldRoomType},
			{"Reserva de habitacion", FieldRoomType},
			{"Nights", FieldNights},
			{"Length of Stay", FieldNights},
			{"Direccion", FieldAddress},
			{"Correo", FieldEmail},
		}

		for _, test := range tests {
			t.Run(test.raw, func(t *testing.T) {
				field, ok := hotelFields.Lookup(test.raw)

				assert.True(t, ok)
				assert.Equal(t, test.expected, field.Key)
			})
		}
	})

	t.Run("should not resolve unknown labels", func(t *testing.T) {
		_, ok := hotelFields.Lookup("Parking")
		assert.False(t, ok)

		assert.Equal(t, "meal_preference", passengerFields.Canonical("Meal  Preference"))
	})
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Title", "title"},
		{"  Date of  Birth ", "date_of_birth"},
		{"--Agency", "agency"},
		{"HABITACIÓN", "habitación"},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			assert.Equal(t, test.expected, normalizeKey(test.raw))
		})
	}
}

func TestExtraLabel(t *testing.T) {
	assert.Equal(t, "Emergency Phone", extraLabel("emergency_phone"))
	assert.Equal(t, "Budget", extraLabel("budget"))
}

func TestSectionMarkers(t *testing.T) {
	for _, key := range SectionOrder {
		for _, lang := range Languages {
			found, ok := sectionForMarker(SectionMarker(key, lang))

			assert.True(t, ok)
			assert.Equal(t, key, found)
		}
	}
}

func TestScanners(t *testing.T) {
	t.Run("passenger scanner opens and closes entities", func(t *testing.T) {
		s := newPassengerScanner()
		assert.Equal(t, noEntityOpen, s.state)

		s.step("Passport: ignored")
		assert.Equal(t, noEntityOpen, s.state)

		s.step("- Alice")
		assert.Equal(t, entityOpen, s.state)
		assert.Equal(t, "Alice", s.current.Name)
		assert.Empty(t, s.done)

		s.step("[Title Bob]")
		assert.Equal(t, entityOpen, s.state)
		assert.Len(t, s.done, 1)

		passengers := s.finish()
		assert.Equal(t, noEntityOpen, s.state)
		assert.Len(t, passengers, 2)
	})

	t.Run("day scanner pushes days on open", func(t *testing.T) {
		s := newDayScanner()

		s.step("- Orphan item")
		assert.Equal(t, noEntityOpen, s.state)
		assert.Empty(t, s.days)

		s.step("DAY 1: Arrival")
		assert.Equal(t, entityOpen, s.state)
		assert.Len(t, s.days, 1)

		s.step("- Pickup")
		assert.Len(t, s.days[0].Items, 1)
	})

	t.Run("hotel scanner keeps the first hotel and populated ones", func(t *testing.T) {
		s := newHotelScanner()

		s.step("- HOTEL: First")
		assert.Equal(t, entityOpen, s.state)

		s.step("- HOTEL: Bare")
		assert.Len(t, s.done, 1)

		s.step("- HOTEL: Full")
		assert.Len(t, s.done, 1)

		s.step("- Check Out: 2024-01-02")
		assert.Equal(t, []HotelStay{{CheckOut: "2024-01-02"}}, s.current.Stays)

		hotels := s.finish()
		assert.Equal(t, noEntityOpen, s.state)
		require.Len(t, hotels, 2)
		assert.Equal(t, "First", hotels[0].Name)
		assert.Equal(t, "Full", hotels[1].Name)
	})
}

func TestModelJSON(t *testing.T) {
	t.Run("should flatten open records", func(t *testing.T) {
		model := New()
		model.MainHeader = MainHeader{
			Title:         "Trip",
			AgencyContact: "Acme",
			Contact:       "Acme",
			Extra:         map[string]string{"code": "X1"},
		}
		model.Passengers = []Passenger{{Name: "Alice", DateOfBirth: "1990", Extra: map[string]string{"diet": "vegan"}}}

		data, err := json.Marshal(model)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"mainHeader": {"title": "Trip", "agency_contact": "Acme", "contact": "Acme", "code": "X1"},
			"passengers": [{"name": "Alice", "date_of_birth": "1990", "diet": "vegan"}],
			"overview": "",
			"days": [],
			"hotels": [],
			"practicalInfo": [],
			"emergency": []
		}`, string(data))

		var decoded Model
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, model.MainHeader, decoded.MainHeader)
		assert.Equal(t, model.Passengers, decoded.Passengers)
	})

	t.Run("should keep alias values as sent", func(t *testing.T) {
		var header MainHeader
		require.NoError(t, json.Unmarshal([]byte(`{"agency_contact": "New", "contact": "Old"}`), &header))

		assert.Equal(t, "New", header.AgencyContact)
		assert.Equal(t, "Old", header.Contact)
	})
}
