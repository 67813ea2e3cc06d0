package fallback

import "fmt"

// System prompt shared by every data-fill call. Factual output, low
// temperature, JSON only.
const dataSystemPrompt = "You are a travel data expert for India. Always respond with valid JSON only — no markdown, no prose, no explanation. Return only the raw JSON array."

func hotelPrompt(city string) string {
	return fmt.Sprintf(`Generate a JSON array of exactly 8 real hotels in %s, India.
Each object must have these exact fields:
{
  "name": "exact real hotel name",
  "tier": "economy" | "standard" | "luxury",
  "starRating": 1-5,
  "pricePerNight": number in INR,
  "description": "2-sentence description",
  "amenities": ["WiFi", "Pool", "Restaurant", ...],
  "checkInTime": "12:00 PM",
  "checkOutTime": "11:00 AM",
  "website": "https://... or empty string",
  "address": "brief address in %s",
  "rating": 3.5-5.0,
  "reviewCount": realistic integer,
  "tag": "short tag e.g. Heritage Stay, Budget Pick, 5-Star",
  "mapLat": latitude as number,
  "mapLng": longitude as number
}
Realistic INR prices: economy ₹500-₹2500, standard ₹2500-₹8000, luxury ₹8000-₹50000.
Include a mix of all three tiers. Use real existing hotels only.
Return ONLY the JSON array.`, city, city)
}

func restaurantPrompt(city string) string {
	return fmt.Sprintf(`Generate a JSON array of exactly 10 real restaurants in %s, India.
Each object must have these exact fields:
{
  "name": "exact real restaurant name",
  "cuisineType": "e.g. North Indian, Mughlai, South Indian, Seafood, Continental",
  "pricePerPerson": number in INR,
  "priceRange": "budget" | "mid" | "premium",
  "isVeg": true or false,
  "mustTryDishes": "dish1, dish2, dish3",
  "description": "2-sentence description",
  "address": "brief address in %s",
  "openTime": "e.g. 11:00 AM",
  "closeTime": "e.g. 11:00 PM",
  "rating": 3.5-5.0,
  "reviewCount": realistic integer,
  "website": "https://... or empty string",
  "mapLat": latitude as number,
  "mapLng": longitude as number
}
Realistic INR prices: budget ₹100-₹500, mid ₹500-₹1200, premium ₹1200+.
Include a mix of budget/mid/premium and veg/non-veg.
Return ONLY the JSON array.`, city, city)
}

func destinationPrompt(city string) string {
	return fmt.Sprintf(`Return a single JSON object (not an array) describing the Indian city "%s" for a travel app.
Fields:
{
  "state": "Indian state name",
  "region": "North India | South India | East India | West India | Central India | Northeast India",
  "category": "Heritage" | "Beaches" | "Hills" | "Backwaters" | "Wildlife" | "Spiritual" | "Adventure" | "Nature",
  "description": "2-sentence travel description",
  "bestSeason": "e.g. Oct-Mar",
  "avgDurationDays": 3-7,
  "mapLat": latitude,
  "mapLng": longitude
}
Return ONLY the JSON object.`, city)
}
