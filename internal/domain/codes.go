package domain

import "strings"

// hotelChains maps two-letter chain codes to readable chain names.
var hotelChains = map[string]string{
	"MC": "Marriott",
	"HI": "Hilton",
	"IH": "InterContinental Hotels Group",
	"AC": "Accor",
	"WY": "Wyndham Hotels",
	"HY": "Hyatt",
	"RT": "Radisson Hotel Group",
	"BW": "Best Western",
	"SH": "Starwood",
	"CH": "Choice Hotels",
	"FS": "Four Seasons",
	"RC": "Ritz-Carlton",
	"OY": "OYO Hotels",
	"MG": "MGM Resorts",
	"LQ": "La Quinta",
}

// HotelChainName expands a chain code to its readable name, falling back to
// the code itself when unknown.
func HotelChainName(chainCode string) string {
	if name, ok := hotelChains[chainCode]; ok {
		return name
	}
	return chainCode
}

// BoardTypeRoomOnly is the board code meaning no meal plan.
const BoardTypeRoomOnly = "ROOM_ONLY"

// BoardTypeLabel turns a board-type code like "BREAKFAST" or
// "HALF_BOARD" into a readable label.
func BoardTypeLabel(boardType string) string {
	if boardType == "" {
		return ""
	}
	label := strings.ReplaceAll(boardType, "_", " ")
	return TitleCase(strings.ToLower(label))
}

// TitleCase upper-cases the first letter of every word. Good enough for
// amenity and meal-plan labels; not a general-purpose casing routine.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if startOfWord && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
		} else {
			b.WriteRune(r)
		}
		startOfWord = r == ' ' || r == '-' || r == '/'
	}
	return b.String()
}
