package planner

import (
	"strings"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// Reference data for the engine. Everything in this file is immutable,
// loaded once, and passed into components explicitly, never mutated at
// runtime.

// season is a northern-hemisphere calendar season; monthSeason flips it for
// southern latitudes.
type season string

const (
	seasonWinter season = "winter"
	seasonSpring season = "spring"
	seasonSummer season = "summer"
	seasonAutumn season = "autumn"
)

func monthSeason(month int, latitude float64) season {
	var s season
	switch month {
	case 12, 1, 2:
		s = seasonWinter
	case 3, 4, 5:
		s = seasonSpring
	case 6, 7, 8:
		s = seasonSummer
	default:
		s = seasonAutumn
	}
	if latitude < 0 {
		switch s {
		case seasonWinter:
			s = seasonSummer
		case seasonSummer:
			s = seasonWinter
		case seasonSpring:
			s = seasonAutumn
		case seasonAutumn:
			s = seasonSpring
		}
	}
	return s
}

// seasonPattern is a curated, date-independent weather summary for one
// destination season.
type seasonPattern struct {
	MinC, MaxC float64
	Condition  string
	Tip        string
}

var seasonalTables = map[string]map[season]seasonPattern{
	"tokyo": {
		seasonWinter: {2, 10, "Cold and clear", "Pack a warm coat; winter illuminations are worth an evening out"},
		seasonSpring: {9, 19, "Mild with cherry blossoms", "Book accommodation early — sakura season is peak tourism"},
		seasonSummer: {23, 31, "Hot and humid", "Carry water and plan indoor stops in the afternoon heat"},
		seasonAutumn: {13, 21, "Crisp and sunny", "Ideal walking weather; autumn foliage peaks in late November"},
	},
	"paris": {
		seasonWinter: {3, 8, "Cold and overcast", "Museums are quiet in winter; bring a waterproof layer"},
		seasonSpring: {8, 16, "Mild with showers", "An umbrella earns its place in your bag"},
		seasonSummer: {15, 26, "Warm and bright", "Long evenings — plan riverside walks after dinner"},
		seasonAutumn: {8, 16, "Cool and rainy", "Cafés over terraces; pack layers"},
	},
	"dubai": {
		seasonWinter: {15, 26, "Warm and sunny", "The best season — desert trips are comfortable"},
		seasonSpring: {21, 34, "Hot and dry", "Start outdoor plans early in the morning"},
		seasonSummer: {30, 42, "Extremely hot", "Stay indoors midday; malls and aquariums beat the heat"},
		seasonAutumn: {23, 35, "Hot, cooling late", "Beach weather returns from October"},
	},
	"bali": {
		seasonWinter: {24, 31, "Hot with tropical rain", "Short heavy showers — plan temples for mornings"},
		seasonSpring: {24, 31, "Warm and drying", "Shoulder season with fewer crowds"},
		seasonSummer: {23, 30, "Dry and sunny", "Peak surf season on the west coast"},
		seasonAutumn: {24, 31, "Warm, building humidity", "Book sunset spots ahead — skies are spectacular"},
	},
	"goa": {
		seasonWinter: {20, 31, "Dry and sunny", "Peak beach season — book stays well ahead"},
		seasonSpring: {24, 33, "Hot and humid", "Sea breeze helps; stay hydrated"},
		seasonSummer: {24, 30, "Monsoon rains", "Many beach shacks close; waterfalls are at their best"},
		seasonAutumn: {23, 31, "Humid, clearing", "Post-monsoon greenery with thinner crowds"},
	},
	"kerala": {
		seasonWinter: {22, 32, "Pleasant and dry", "Backwater cruises are calmest now"},
		seasonSpring: {25, 34, "Hot before the rains", "Hill stations stay cooler than the coast"},
		seasonSummer: {23, 29, "Heavy monsoon", "Ayurveda season — treatments are considered most effective"},
		seasonAutumn: {23, 30, "Light rains", "Lush landscapes and good houseboat availability"},
	},
	"munnar": {
		seasonWinter: {10, 22, "Cool and misty", "Mornings are cold in the hills — pack a fleece"},
		seasonSpring: {14, 25, "Mild and clear", "Best visibility for tea-country viewpoints"},
		seasonSummer: {15, 22, "Wet and foggy", "Trails get slippery; carry rain protection"},
		seasonAutumn: {13, 23, "Cool with showers", "Waterfalls run full after the monsoon"},
	},
	"new york": {
		seasonWinter: {-3, 5, "Cold with snow", "Dress in serious layers; rooftop bars close, museums don't"},
		seasonSpring: {7, 18, "Mild and changeable", "Central Park blooms from late April"},
		seasonSummer: {20, 29, "Hot and humid", "Free outdoor events most evenings"},
		seasonAutumn: {9, 18, "Crisp and clear", "Classic season for walking the city"},
	},
}

// climate-zone fallback for destinations without a curated table.
// Approximate latitudes feed a tropical/temperate/polar banding.
var destLatitudes = map[string]float64{
	"tokyo":     35.7,
	"paris":     48.9,
	"dubai":     25.2,
	"bali":      -8.4,
	"goa":       15.3,
	"kerala":    10.8,
	"munnar":    10.1,
	"new york":  40.7,
	"london":    51.5,
	"singapore": 1.35,
	"sydney":    -33.9,
	"reykjavik": 64.1,
	"bangkok":   13.8,
	"rome":      41.9,
}

// defaultLatitude places unknown destinations in the temperate band.
const defaultLatitude = 40.0

var zonePatterns = map[string]map[season]seasonPattern{
	"tropical": {
		seasonWinter: {22, 30, "Warm with occasional rain", "Light clothing year-round; afternoon showers pass quickly"},
		seasonSpring: {23, 31, "Hot and humid", "Plan strenuous activities for the morning"},
		seasonSummer: {23, 30, "Hot with tropical rain", "Pack a light rain layer"},
		seasonAutumn: {23, 30, "Warm and humid", "Stay hydrated and use sun protection"},
	},
	"temperate": {
		seasonWinter: {-2, 8, "Cold, chance of snow", "Pack warm layers and waterproof shoes"},
		seasonSpring: {7, 17, "Mild and changeable", "Layers beat any single jacket"},
		seasonSummer: {16, 27, "Warm and mostly sunny", "Long daylight hours — plan full days"},
		seasonAutumn: {6, 16, "Cool and crisp", "Good walking weather; evenings turn cold"},
	},
	"polar": {
		seasonWinter: {-20, -5, "Severe cold and dark", "Specialist cold-weather gear is essential"},
		seasonSpring: {-10, 2, "Very cold, brightening", "Daylight grows fast; conditions stay harsh"},
		seasonSummer: {2, 12, "Cool with midnight sun", "Pack for cold despite the season"},
		seasonAutumn: {-8, 2, "Freezing, darkening", "Aurora season begins"},
	},
}

func climateZone(latitude float64) string {
	abs := latitude
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs <= 23.5:
		return "tropical"
	case abs < 66.5:
		return "temperate"
	default:
		return "polar"
	}
}

// rateCard holds per-person per-day base rates in USD at the mid-range tier.
type rateCard struct {
	Accommodation float64
	Food          float64
	Transport     float64
	Activities    float64
}

var rateCards = map[string]rateCard{
	"tokyo":    {90, 45, 20, 35},
	"paris":    {110, 55, 18, 40},
	"dubai":    {100, 50, 25, 45},
	"bali":     {40, 20, 12, 25},
	"goa":      {35, 15, 10, 20},
	"kerala":   {30, 15, 10, 18},
	"munnar":   {28, 14, 10, 15},
	"new york": {140, 60, 25, 50},
}

// defaultRateCard covers destinations without curated pricing.
var defaultRateCard = rateCard{70, 35, 18, 30}

var budgetMultipliers = map[domain.BudgetLevel]float64{
	domain.BudgetLow:    0.6,
	domain.BudgetMid:    1.0,
	domain.BudgetLuxury: 2.2,
}

// destination → local currency; unknown destinations fall back to USD.
var destCurrencies = map[string]string{
	"tokyo":    "JPY",
	"japan":    "JPY",
	"paris":    "EUR",
	"rome":     "EUR",
	"dubai":    "AED",
	"bali":     "IDR",
	"goa":      "INR",
	"kerala":   "INR",
	"munnar":   "INR",
	"new york": "USD",
}

const fallbackCurrency = "USD"

// mockRates is the static USD-based rate table used when no live currency
// collaborator is configured or the lookup fails.
var mockRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"JPY": 110.0,
	"AED": 3.67,
	"IDR": 14000.0,
	"INR": 83.0,
}

// zeroMinorUnit currencies are rounded to whole amounts instead of cents.
var zeroMinorUnit = map[string]bool{
	"JPY": true,
	"IDR": true,
	"KRW": true,
	"VND": true,
}

// catalogEntry is an activity template. Tags mix group-type affinities with
// exactly one intensity marker (relaxed/moderate/intense).
type catalogEntry struct {
	Title    string
	Category string
	Tags     []string
}

var activityCatalogs = map[string][]catalogEntry{
	"tokyo": {
		{"Visit Senso-ji temple in Asakusa", "culture", []string{"solo", "family", "fiancee", "relaxed"}},
		{"Cross Shibuya at rush hour", "sightseeing", []string{"solo", "friends", "moderate"}},
		{"Sushi breakfast at the Tsukiji outer market", "food", []string{"solo", "friends", "fiancee", "moderate"}},
		{"Explore Harajuku street fashion", "shopping", []string{"friends", "solo", "moderate"}},
		{"Day trip toward Mount Fuji viewpoints", "adventure", []string{"solo", "friends", "family", "intense"}},
		{"teamLab digital art museum", "culture", []string{"family", "fiancee", "friends", "relaxed"}},
		{"Karaoke night in Shinjuku", "nightlife", []string{"friends", "intense"}},
		{"Stroll the Meiji Shrine gardens", "relaxation", []string{"fiancee", "solo", "family", "relaxed"}},
	},
	"paris": {
		{"Eiffel Tower and Trocadéro gardens", "sightseeing", []string{"fiancee", "family", "solo", "moderate"}},
		{"The Louvre and the Mona Lisa", "culture", []string{"solo", "family", "fiancee", "moderate"}},
		{"Montmartre walk up to Sacré-Cœur", "sightseeing", []string{"solo", "fiancee", "moderate"}},
		{"Seine river evening cruise", "romance", []string{"fiancee", "family", "relaxed"}},
		{"Food crawl through Le Marais", "food", []string{"friends", "fiancee", "moderate"}},
		{"Picnic in the Luxembourg Gardens", "relaxation", []string{"family", "fiancee", "solo", "relaxed"}},
		{"Catacombs underground tour", "adventure", []string{"friends", "solo", "intense"}},
		{"Latin Quarter bar hopping", "nightlife", []string{"friends", "intense"}},
	},
	"dubai": {
		{"Burj Khalifa observation deck at sunset", "sightseeing", []string{"family", "fiancee", "friends", "moderate"}},
		{"Desert safari with dune bashing", "adventure", []string{"friends", "solo", "family", "intense"}},
		{"Old Dubai souks and abra crossing", "culture", []string{"solo", "family", "moderate"}},
		{"Jumeirah beach afternoon", "relaxation", []string{"family", "fiancee", "friends", "relaxed"}},
		{"Dubai Mall and the aquarium", "shopping", []string{"family", "friends", "relaxed"}},
		{"Marina dinner cruise", "romance", []string{"fiancee", "relaxed"}},
	},
	"bali": {
		{"Sunrise over the Tegalalang rice terraces", "sightseeing", []string{"solo", "fiancee", "moderate"}},
		{"Tanah Lot temple at low tide", "culture", []string{"family", "solo", "fiancee", "relaxed"}},
		{"Surf lesson at Seminyak beach", "adventure", []string{"friends", "solo", "intense"}},
		{"Balinese cooking class in Ubud", "food", []string{"fiancee", "family", "friends", "moderate"}},
		{"Spa and flower bath afternoon", "relaxation", []string{"fiancee", "solo", "relaxed"}},
		{"Mount Batur sunrise trek", "adventure", []string{"friends", "solo", "intense"}},
	},
	"goa": {
		{"Morning at Anjuna beach", "relaxation", []string{"friends", "solo", "family", "relaxed"}},
		{"Portuguese quarter walk in Fontainhas", "culture", []string{"solo", "fiancee", "moderate"}},
		{"Spice plantation tour with lunch", "food", []string{"family", "fiancee", "moderate"}},
		{"Water sports at Calangute", "adventure", []string{"friends", "family", "intense"}},
		{"Saturday night market at Arpora", "shopping", []string{"friends", "family", "moderate"}},
		{"Beach shack sunset dinner", "romance", []string{"fiancee", "relaxed"}},
	},
	"kerala": {
		{"Houseboat cruise on the Alleppey backwaters", "sightseeing", []string{"family", "fiancee", "relaxed"}},
		{"Kathakali performance in Kochi", "culture", []string{"solo", "family", "relaxed"}},
		{"Ayurvedic massage session", "relaxation", []string{"fiancee", "solo", "relaxed"}},
		{"Periyar wildlife sanctuary walk", "adventure", []string{"family", "friends", "moderate"}},
		{"Sadya feast on a banana leaf", "food", []string{"family", "friends", "moderate"}},
	},
	"munnar": {
		{"Tea plantation and museum visit", "culture", []string{"family", "solo", "fiancee", "relaxed"}},
		{"Trek in Eravikulam national park", "adventure", []string{"friends", "solo", "intense"}},
		{"Boating at Mattupetty dam", "relaxation", []string{"family", "fiancee", "relaxed"}},
		{"Spice garden guided tour", "sightseeing", []string{"family", "solo", "moderate"}},
		{"Top Station viewpoint at dawn", "adventure", []string{"fiancee", "solo", "moderate"}},
	},
	"new york": {
		{"Walk the High Line to Hudson Yards", "sightseeing", []string{"solo", "fiancee", "friends", "moderate"}},
		{"The Met or the Museum of Natural History", "culture", []string{"family", "solo", "relaxed"}},
		{"Broadway show in the evening", "nightlife", []string{"fiancee", "family", "friends", "moderate"}},
		{"Brooklyn Bridge at sunrise", "sightseeing", []string{"solo", "fiancee", "moderate"}},
		{"Food tour through Queens", "food", []string{"friends", "solo", "intense"}},
		{"Central Park rowboats", "relaxation", []string{"family", "fiancee", "relaxed"}},
		{"Rooftop bars in Manhattan", "nightlife", []string{"friends", "intense"}},
	},
}

// genericCatalog covers destinations without a curated activity list.
var genericCatalog = []catalogEntry{
	{"Visit the main historical landmarks", "sightseeing", []string{"solo", "family", "fiancee", "moderate"}},
	{"Guided walking tour of the old town", "culture", []string{"solo", "family", "moderate"}},
	{"Local food tasting tour", "food", []string{"friends", "fiancee", "solo", "moderate"}},
	{"Museum or gallery morning", "culture", []string{"solo", "family", "relaxed"}},
	{"Explore the central market district", "shopping", []string{"family", "friends", "moderate"}},
	{"Sunset viewpoint walk", "romance", []string{"fiancee", "solo", "relaxed"}},
	{"Day hike outside the city", "adventure", []string{"friends", "solo", "intense"}},
	{"Relaxed café and park afternoon", "relaxation", []string{"solo", "fiancee", "family", "relaxed"}},
	{"Evening out in the nightlife district", "nightlife", []string{"friends", "intense"}},
}

// suggestionLists backs the destination suggestions endpoint; entries come
// from the curated top-five lists the planner was originally shipped with.
var suggestionLists = map[string][]string{
	"bali": {
		"Visit ancient temples like Tanah Lot and Uluwatu",
		"Explore rice terraces in Ubud",
		"Relax on beautiful beaches in Seminyak",
		"Experience traditional Balinese culture",
		"Try local cuisine and cooking classes",
	},
	"paris": {
		"Visit the Eiffel Tower and Trocadéro Gardens",
		"Explore the Louvre Museum and see the Mona Lisa",
		"Stroll through Montmartre and visit Sacré-Cœur",
		"Take a Seine River cruise",
		"Experience local cuisine in Le Marais district",
	},
	"munnar": {
		"Visit tea plantations and tea museums",
		"Go trekking in the Western Ghats",
		"See wildlife at Eravikulam National Park",
		"Enjoy boating at Mattupetty Dam",
		"Experience local spice gardens",
	},
	"goa": {
		"Relax on pristine beaches like Anjuna and Calangute",
		"Explore Portuguese colonial architecture",
		"Visit spice plantations",
		"Experience vibrant nightlife",
		"Try water sports and beach activities",
	},
	"kerala": {
		"Cruise through the backwaters of Alleppey",
		"Visit tea plantations in Munnar",
		"Experience Ayurvedic treatments",
		"Explore wildlife in Periyar National Park",
		"Watch traditional Kathakali performances",
	},
	"tokyo": {
		"Visit traditional temples like Senso-ji",
		"Experience the bustling Shibuya crossing",
		"Try authentic sushi at Tsukiji market",
		"Explore modern districts like Harajuku",
		"Take day trips to Mount Fuji",
	},
	"dubai": {
		"See the view from the Burj Khalifa",
		"Take a desert safari at sunset",
		"Wander the gold and spice souks",
		"Relax on Jumeirah beach",
		"Shop and ice skate at the Dubai Mall",
	},
	"new york": {
		"Walk the High Line and Central Park",
		"Catch a Broadway show",
		"Cross the Brooklyn Bridge on foot",
		"Visit the Met and MoMA",
		"Eat your way through the boroughs",
	},
}

var genericSuggestions = []string{
	"Visit historical sites and landmarks",
	"Try traditional local cuisine and food tours",
	"Explore museums, art galleries, or cultural centers",
	"Go sightseeing or take walking tours",
	"Experience local markets and shopping districts",
}

// destinationKey normalizes a destination name for table lookups. Partial
// matching both ways lets "New York City" hit the "new york" tables.
func destinationKey(destination string) string {
	d := strings.ToLower(strings.TrimSpace(destination))
	if _, ok := seasonalTables[d]; ok {
		return d
	}
	for key := range seasonalTables {
		if strings.Contains(d, key) || strings.Contains(key, d) {
			return key
		}
	}
	return d
}

// Suggest returns the curated top-five activity suggestions for a
// destination, or a generic list when none is curated.
func Suggest(destination string) []string {
	key := destinationKey(destination)
	if s, ok := suggestionLists[key]; ok {
		return append([]string(nil), s...)
	}
	for k, s := range suggestionLists {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return append([]string(nil), s...)
		}
	}
	return append([]string(nil), genericSuggestions...)
}
