package models

// TripRequest is the input to the itinerary generation pipeline.
type TripRequest struct {
	Destination          string   `json:"destination"`
	OriginCity           string   `json:"originCity"`
	Days                 int      `json:"days"`
	StartDate            string   `json:"startDate,omitempty"`
	EndDate              string   `json:"endDate,omitempty"`
	Adults               int      `json:"adults"`
	Children             int      `json:"children"`
	Tier                 string   `json:"tier"`
	Interests            []string `json:"interests"`
	DailyBudgetPerPerson int      `json:"dailyBudgetPerPerson"`
}
