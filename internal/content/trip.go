// Package content holds the static sample trip shown inside the sheet.
package content

// Entry is one line item: an itinerary stop, an announcement or a tip.
type Entry struct {
	Time   string
	Title  string
	Detail string
}

// Section groups entries under a heading.
type Section struct {
	Title   string
	Entries []Entry
}

// Trip returns the sample trip. The slice is freshly built on every call.
func Trip() []Section {
	return []Section{
		{
			Title: "Today's itinerary",
			Entries: []Entry{
				{Time: "07:30", Title: "Breakfast at the hotel", Detail: "Terrace restaurant, level 2. Coffee service ends at 10:00."},
				{Time: "09:00", Title: "Old town walking tour", Detail: "Meet the guide by the clock tower. Wear comfortable shoes; the route is cobbled and climbs to the castle gate."},
				{Time: "12:30", Title: "Lunch at Mercado Central", Detail: "Stalls 14 to 22 hold the group reservation."},
				{Time: "14:00", Title: "Free afternoon", Detail: "Suggested: harbour museum, botanical garden, or the cable car to the viewpoint."},
				{Time: "19:30", Title: "Welcome dinner", Detail: "Casa Azul, 5 minutes on foot from the hotel. Smart casual."},
			},
		},
		{
			Title: "Announcements",
			Entries: []Entry{
				{Title: "Tour bus moved", Detail: "Tomorrow's coach leaves from the north entrance, not the lobby."},
				{Title: "Museum tickets", Detail: "Pick up your pass at reception before 13:00."},
				{Title: "Weather", Detail: "Light rain expected after 17:00. Umbrellas are available at the front desk."},
			},
		},
		{
			Title: "Safety tips",
			Entries: []Entry{
				{Title: "Emergency number", Detail: "Dial 112 from any phone, including without a SIM card."},
				{Title: "Pickpockets", Detail: "Keep bags zipped and in front of you on the tram and in the market."},
				{Title: "Water", Detail: "Tap water is safe to drink; refill stations are marked with a blue drop."},
				{Title: "Group contact", Detail: "Your guide's phone is on the back of your badge."},
			},
		},
	}
}
