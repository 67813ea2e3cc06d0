package models

import "time"

type Hotel struct {
	HotelID       string    `json:"hotelid" bson:"hotelid"`
	DestinationID string    `json:"destinationid" bson:"destinationid"`
	Name          string    `json:"name" bson:"name"`
	Tier          Tier      `json:"tier" bson:"tier"`
	StarRating    int       `json:"starRating" bson:"starRating"`
	PricePerNight int       `json:"pricePerNight" bson:"pricePerNight"`
	Description   string    `json:"description" bson:"description"`
	ImageURL      string    `json:"imageUrl" bson:"imageUrl"`
	Address       string    `json:"address" bson:"address"`
	Amenities     []string  `json:"amenities" bson:"amenities"`
	CheckInTime   string    `json:"checkInTime" bson:"checkInTime"`
	CheckOutTime  string    `json:"checkOutTime" bson:"checkOutTime"`
	Website       string    `json:"website,omitempty" bson:"website,omitempty"`
	Tag           string    `json:"tag,omitempty" bson:"tag,omitempty"`
	MapLat        float64   `json:"mapLat,omitempty" bson:"mapLat,omitempty"`
	MapLng        float64   `json:"mapLng,omitempty" bson:"mapLng,omitempty"`
	Rating        float64   `json:"rating" bson:"rating"`
	ReviewCount   int       `json:"reviewCount" bson:"reviewCount"`
	IsActive      bool      `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
