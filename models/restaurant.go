package models

import "time"

type Restaurant struct {
	RestaurantID   string     `json:"restaurantid" bson:"restaurantid"`
	DestinationID  string     `json:"destinationid" bson:"destinationid"`
	Name           string     `json:"name" bson:"name"`
	CuisineType    string     `json:"cuisineType" bson:"cuisineType"`
	PricePerPerson int        `json:"pricePerPerson" bson:"pricePerPerson"`
	PriceRange     PriceRange `json:"priceRange" bson:"priceRange"`
	IsVeg          bool       `json:"isVeg" bson:"isVeg"`
	MustTryDishes  string     `json:"mustTryDishes,omitempty" bson:"mustTryDishes,omitempty"`
	Description    string     `json:"description" bson:"description"`
	Address        string     `json:"address,omitempty" bson:"address,omitempty"`
	OpenTime       string     `json:"openTime,omitempty" bson:"openTime,omitempty"`
	CloseTime      string     `json:"closeTime,omitempty" bson:"closeTime,omitempty"`
	Website        string     `json:"website,omitempty" bson:"website,omitempty"`
	MapLat         float64    `json:"mapLat,omitempty" bson:"mapLat,omitempty"`
	MapLng         float64    `json:"mapLng,omitempty" bson:"mapLng,omitempty"`
	Rating         float64    `json:"rating" bson:"rating"`
	ReviewCount    int        `json:"reviewCount" bson:"reviewCount"`
	ImageURL       string     `json:"imageUrl" bson:"imageUrl"`
	IsActive       bool       `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
}
