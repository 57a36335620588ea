package usecase

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/travel-checkout/offer-normalization-engine/internal/domain"
)

// RoomDetails is the parsed view of one hotel offer's room information.
// Extraction metadata tells callers how each value was obtained.
type RoomDetails struct {
	RoomType  domain.Extraction[string]
	Bed       domain.Extraction[domain.BedConfig]
	RoomSize  string
	Amenities []string
}

// OfferDescriptionParser defines the interface for extracting room, bed and
// amenity details from a hotel offer's structured fields and free text.
type OfferDescriptionParser interface {
	// ParseRoomDetails extracts room details from the room block and the
	// offer-level description. Structured fields win over text heuristics;
	// a raw room code is the weakest fallback.
	ParseRoomDetails(room *domain.RawRoom, description, boardType string) RoomDetails
}

// descriptionParser implements OfferDescriptionParser.
type descriptionParser struct{}

// NewOfferDescriptionParser creates a new OfferDescriptionParser.
func NewOfferDescriptionParser() OfferDescriptionParser {
	return &descriptionParser{}
}

var (
	segmentSeparators = regexp.MustCompile(`[-/;|,\n]`)

	roomCategoryPattern = regexp.MustCompile(`(junior suite|suite|deluxe|superior|executive|standard|studio|apartment|family|classic|premium|economy|budget)`)

	bedTypePattern    = regexp.MustCompile(`\b(king|queen|twin|double|single|sofa bed|bunk)\b`)
	compactBedPattern = regexp.MustCompile(`\b([12])\s*(k|q|t|d|s)\b`)
	bedCountPattern   = regexp.MustCompile(`(\d+)\s*(?:king|queen|twin|double|single|sofa|bunk)?\s*beds?\b`)

	roomSizePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(sqm|sq\.?\s?m\b|m2|sqft|sq\.?\s?ft\b)`)
)

// compactBedTypes maps single-letter bed codes to readable bed types.
var compactBedTypes = map[string]string{
	"k": "King",
	"q": "Queen",
	"t": "Twin",
	"d": "Double",
	"s": "Single",
}

// amenityKeywords is the fixed vocabulary scanned for in description text.
var amenityKeywords = []string{
	"wifi",
	"wi-fi",
	"internet",
	"breakfast",
	"parking",
	"pool",
	"spa",
	"gym",
	"fitness",
	"air conditioning",
	"balcony",
	"terrace",
	"kitchenette",
	"kitchen",
	"accessible",
	"minibar",
	"mini bar",
	"safe",
	"tv",
	"television",
	"telephone",
	"hairdryer",
	"bathtub",
	"shower",
	"sea view",
	"city view",
	"garden view",
	"non-smoking",
}

// ParseRoomDetails implements OfferDescriptionParser.ParseRoomDetails.
func (p *descriptionParser) ParseRoomDetails(room *domain.RawRoom, description, boardType string) RoomDetails {
	text := description
	if text == "" && room != nil && room.Description != nil {
		text = room.Description.Text
	}
	segments := splitSegments(text)

	details := RoomDetails{
		RoomType:  p.extractRoomType(room, segments),
		Bed:       p.extractBed(room, segments),
		RoomSize:  extractRoomSize(text),
		Amenities: p.extractAmenities(segments, text, boardType),
	}
	return details
}

// splitSegments breaks description text into trimmed lowercase segments.
func splitSegments(text string) []string {
	if text == "" {
		return nil
	}

	parts := segmentSeparators.Split(text, -1)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		seg := strings.ToLower(strings.TrimSpace(part))
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// extractRoomType resolves the room category with fixed precedence:
// structured estimate, then description text, then the raw room code.
func (p *descriptionParser) extractRoomType(room *domain.RawRoom, segments []string) domain.Extraction[string] {
	if room != nil && room.TypeEstimated != nil && room.TypeEstimated.Category != "" {
		label := domain.TitleCase(strings.ReplaceAll(strings.ToLower(room.TypeEstimated.Category), "_", " "))
		return domain.Extracted(label, domain.ConfidenceHigh, domain.SourceStructured)
	}

	for _, seg := range segments {
		if match := roomCategoryPattern.FindString(seg); match != "" {
			return domain.Extracted(domain.TitleCase(match), domain.ConfidenceMed, domain.SourceDescription)
		}
	}

	if room != nil && room.Type != "" {
		return domain.Extracted(room.Type, domain.ConfidenceLow, domain.SourceCode)
	}

	return domain.Absent[string]()
}

// extractBed resolves the bed configuration with the same precedence as the
// room type. Text heuristics understand long forms ("king bed"), compact
// notations ("2Q") and explicit counts ("2 beds").
func (p *descriptionParser) extractBed(room *domain.RawRoom, segments []string) domain.Extraction[domain.BedConfig] {
	if room != nil && room.TypeEstimated != nil && room.TypeEstimated.BedType != "" {
		cfg := domain.BedConfig{
			Count: room.TypeEstimated.Beds,
			Type:  domain.TitleCase(strings.ToLower(room.TypeEstimated.BedType)),
		}
		return domain.Extracted(cfg, domain.ConfidenceHigh, domain.SourceStructured)
	}

	for _, seg := range segments {
		if m := compactBedPattern.FindStringSubmatch(seg); m != nil {
			count, _ := strconv.Atoi(m[1])
			return domain.Extracted(domain.BedConfig{
				Count: count,
				Type:  compactBedTypes[m[2]],
			}, domain.ConfidenceMed, domain.SourceDescription)
		}

		if m := bedTypePattern.FindStringSubmatch(seg); m != nil {
			cfg := domain.BedConfig{Type: domain.TitleCase(m[1])}
			if c := bedCountPattern.FindStringSubmatch(seg); c != nil {
				cfg.Count, _ = strconv.Atoi(c[1])
			}
			return domain.Extracted(cfg, domain.ConfidenceMed, domain.SourceDescription)
		}
	}

	return domain.Absent[domain.BedConfig]()
}

// extractRoomSize returns the first size mention found in the text, or "".
// The value is advisory free text, not a parsed measurement.
func extractRoomSize(text string) string {
	if text == "" {
		return ""
	}

	m := roomSizePattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return ""
	}

	unit := strings.ReplaceAll(strings.ReplaceAll(m[2], ".", ""), " ", "")
	return m[1] + unit
}

// extractAmenities scans segments and the whole text against the amenity
// vocabulary, then folds in a readable board label when the offer includes
// more than the room. Output is deduplicated and title-cased; failures
// degrade to an empty list.
func (p *descriptionParser) extractAmenities(segments []string, text, boardType string) []string {
	found := make(map[string]struct{})

	lowered := strings.ToLower(text)
	for _, keyword := range amenityKeywords {
		matched := strings.Contains(lowered, keyword)
		if !matched {
			for _, seg := range segments {
				if strings.Contains(seg, keyword) {
					matched = true
					break
				}
			}
		}
		if matched {
			found[canonicalAmenity(keyword)] = struct{}{}
		}
	}

	// The board label joins the set before collection so a description that
	// already names the meal plan does not list it twice.
	if boardType != "" && boardType != domain.BoardTypeRoomOnly {
		found[domain.BoardTypeLabel(boardType)] = struct{}{}
	}

	amenities := make([]string, 0, len(found))
	for amenity := range found {
		amenities = append(amenities, amenity)
	}
	sort.Strings(amenities)

	return amenities
}

// canonicalAmenity collapses keyword variants into one display label.
func canonicalAmenity(keyword string) string {
	switch keyword {
	case "wifi", "wi-fi", "internet":
		return "WiFi"
	case "tv", "television":
		return "TV"
	case "gym", "fitness":
		return "Gym"
	case "mini bar", "minibar":
		return "Minibar"
	default:
		return domain.TitleCase(keyword)
	}
}

// Ensure descriptionParser implements OfferDescriptionParser at compile time.
var _ OfferDescriptionParser = (*descriptionParser)(nil)
