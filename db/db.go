package db

import (
	"context"
	"log"

	"tripwise/globals"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UsersCollection        *mongo.Collection
	DestinationsCollection *mongo.Collection
	AttractionsCollection  *mongo.Collection
	HotelsCollection       *mongo.Collection
	RestaurantsCollection  *mongo.Collection
	ItinerariesCollection  *mongo.Collection
	SavedPlansCollection   *mongo.Collection
	ReviewsCollection      *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := globals.Getenv("MONGODB_URI", "mongodb://localhost:27017")

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(globals.Getenv("MONGODB_DB", "tripwise"))
	UsersCollection = database.Collection("users")
	DestinationsCollection = database.Collection("destinations")
	AttractionsCollection = database.Collection("attractions")
	HotelsCollection = database.Collection("hotels")
	RestaurantsCollection = database.Collection("restaurants")
	ItinerariesCollection = database.Collection("itineraries")
	SavedPlansCollection = database.Collection("savedplans")
	ReviewsCollection = database.Collection("reviews")
}
