package models

type Attraction struct {
	AttractionID      string  `json:"attractionid" bson:"attractionid"`
	DestinationID     string  `json:"destinationid" bson:"destinationid"`
	Name              string  `json:"name" bson:"name"`
	Category          string  `json:"category" bson:"category"`
	Description       string  `json:"description" bson:"description"`
	ImageURL          string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	EntryFeeIndian    int     `json:"entryFeeIndian" bson:"entryFeeIndian"`
	EntryFeeForeign   int     `json:"entryFeeForeign" bson:"entryFeeForeign"`
	EntryFeeChild     int     `json:"entryFeeChild" bson:"entryFeeChild"`
	OpenTime          string  `json:"openTime,omitempty" bson:"openTime,omitempty"`
	CloseTime         string  `json:"closeTime,omitempty" bson:"closeTime,omitempty"`
	ClosedOn          string  `json:"closedOn,omitempty" bson:"closedOn,omitempty"`
	VisitDurationMins int     `json:"visitDurationMins" bson:"visitDurationMins"`
	BestTimeToVisit   string  `json:"bestTimeToVisit,omitempty" bson:"bestTimeToVisit,omitempty"`
	MapLat            float64 `json:"mapLat,omitempty" bson:"mapLat,omitempty"`
	MapLng            float64 `json:"mapLng,omitempty" bson:"mapLng,omitempty"`
	InsiderTip        string  `json:"insiderTip,omitempty" bson:"insiderTip,omitempty"`
	IsActive          bool    `json:"isActive" bson:"isActive"`
}
