package models

import "time"

type Review struct {
	ReviewID      string     `json:"reviewid" bson:"reviewid"`
	UserID        string     `json:"userid" bson:"userid"`
	DestinationID string     `json:"destinationid" bson:"destinationid"`
	ItineraryID   string     `json:"itineraryid,omitempty" bson:"itineraryid,omitempty"`
	Rating        int        `json:"rating" bson:"rating"`
	Comment       string     `json:"comment,omitempty" bson:"comment,omitempty"`
	TripDate      *time.Time `json:"tripDate,omitempty" bson:"tripDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
}
