package itinerary_test

import "bitbucket.org/crgw/itinerary-hub/internal/itinerary"

const fullEnglishText = `--- MAIN HEADER ---
- Title: Andes Adventure
- Subtitle: Peru 2024
- Agency: Condor Travel
- Nationality: French
- Agency Contact: Acme Tours
- Emergency Phone: 555 0100

--- SECTION: Who is Traveling? ---
- Alice Martin
  - Nationality: French
  - Passport: X123
- Bob Martin
  - Date of Birth: 1980
  - Room: Double

--- SECTION: Trip Overview ---
- Ten days across the Andes.
Cusco and Lima included.

--- SECTION: Detailed Itinerary ---
Lines before the first day are dropped
DAY 1: Arrival in Lima
Date: 2024-01-01
- 14h30: Transfer to hotel
- Welcome dinner
Included services: Transfer and dinner
[MAPA: Lima Airport - Miraflores]
DAY 2: Cusco
Fecha: 2024-01-02
- 09:00: Flight to Cusco

--- SECTION: Hotel Information ---
- HOTEL: Casa Andina - 4 stars
- Address: Av Pardo 123
- Phone: 555 0101
- Check In: 2024-01-01
- Check Out: 2024-01-02
- Duration of stay: 1 night
- Room Type: Double
- Services: Breakfast
- HOTEL: Empty Lodge
- HOTEL: Palacio Inka
- Reservation number: R55
- Check In: 2024-01-02

--- SECTION: Essential Practical Information ---
- Bring a jacket
Altitude can be tough

--- SECTION: Emergency and Coordination Contacts ---
- Local guide 555 0102
`

func fullModel() itinerary.Model {
	model := itinerary.New()

	model.MainHeader = itinerary.MainHeader{
		Title:         "Andes Adventure",
		Subtitle:      "Peru 2024",
		Agency:        "Condor Travel",
		Nationality:   "French",
		AgencyContact: "Acme Tours",
		Contact:       "Acme Tours",
		Extra:         map[string]string{"emergency_phone": "555 0100"},
	}
	model.Passengers = []itinerary.Passenger{
		{Name: "Alice Martin", Nationality: "French", Passport: "X123"},
		{Name: "Bob Martin", DateOfBirth: "1980", Room: "Double"},
	}
	model.Overview = "Ten days across the Andes. Cusco and Lima included."
	model.Days = []itinerary.Day{
		{
			Number: 1,
			Title:  "Arrival in Lima",
			Date:   "2024-01-01",
			Items: []itinerary.DayItem{
				{Time: "14:30", Text: "Transfer to hotel"},
				{Time: "", Text: "Welcome dinner"},
			},
			Includes: "Transfer and dinner",
			Maps:     []itinerary.RouteMap{{Origin: "Lima Airport", Destination: "Miraflores"}},
		},
		{
			Number: 2,
			Title:  "Cusco",
			Date:   "2024-01-02",
			Items:  []itinerary.DayItem{{Time: "09:00", Text: "Flight to Cusco"}},
			Maps:   []itinerary.RouteMap{},
		},
	}
	model.Hotels = []itinerary.Hotel{
		{
			Name:     "Casa Andina",
			Stars:    "4 stars",
			Address:  "Av Pardo 123",
			Phone:    "555 0101",
			RoomType: "Double",
			Services: "Breakfast",
			Stays:    []itinerary.HotelStay{{CheckIn: "2024-01-01", CheckOut: "2024-01-02", Nights: "1 night"}},
		},
		{
			Name:              "Palacio Inka",
			ReservationNumber: "R55",
			Stays:             []itinerary.HotelStay{{CheckIn: "2024-01-02"}},
		},
	}
	model.PracticalInfo = []string{"Bring a jacket", "Altitude can be tough"}
	model.Emergency = []string{"Local guide 555 0102"}

	return model
}

// withHeader prefixes lines with the marker of one section.
func withHeader(marker string, lines string) string {
	return marker + "\n" + lines
}
