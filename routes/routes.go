package routes

import (
	"tripwise/auth"
	"tripwise/destinations"
	"tripwise/hotels"
	"tripwise/itinerary"
	"tripwise/middleware"
	"tripwise/ratelim"
	"tripwise/restaurants"
	"tripwise/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", auth.Logout)
	router.POST("/api/auth/token/refresh", rl.Limit(auth.Refresh))

	router.GET("/api/auth/me", middleware.Authenticate(auth.GetProfile))
	router.PUT("/api/auth/me", middleware.Authenticate(auth.UpdateProfile))
	router.POST("/api/auth/password", middleware.Authenticate(auth.ChangePassword))
}

// AddItineraryRoutes wires generation and the itinerary lifecycle. The
// generate endpoint is rate limited per IP because each call costs an
// upstream model request.
func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/generate", rl.Limit(middleware.OptionalAuth(h.Generate)))
	router.GET("/api/generate/packages", h.GetPackages)

	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetMyItineraries))
	router.GET("/api/itineraries/:itineraryid", middleware.OptionalAuth(itinerary.GetItinerary))
	router.DELETE("/api/itineraries/:itineraryid", middleware.Authenticate(itinerary.DeleteItinerary))

	router.POST("/api/itineraries/:itineraryid/save", middleware.Authenticate(itinerary.SaveItinerary))
	router.DELETE("/api/itineraries/:itineraryid/save", middleware.Authenticate(itinerary.UnsaveItinerary))
	router.POST("/api/itineraries/:itineraryid/share", middleware.Authenticate(itinerary.ShareItinerary))
	router.GET("/api/itineraries/:itineraryid/pdf", middleware.OptionalAuth(itinerary.ExportPDF))
	router.GET("/api/itineraries/:itineraryid/qr", middleware.OptionalAuth(itinerary.ShareQR))

	router.GET("/api/saved", middleware.Authenticate(itinerary.GetSavedPlans))
	router.GET("/api/shared/:token", itinerary.GetSharedItinerary)
}

// AddDestinationRoutes wires destination reads. The per-slug endpoints
// go through the cache-aside filler and are rate limited: a cold slug
// triggers generation.
func AddDestinationRoutes(router *httprouter.Router, h *destinations.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/destinations", h.List)
	router.GET("/api/destinations/:slug", rl.Limit(h.Get))
	router.GET("/api/destinations/:slug/hotels", rl.Limit(h.Hotels))
	router.GET("/api/destinations/:slug/restaurants", rl.Limit(h.Restaurants))
	router.GET("/api/destinations/:slug/attractions", rl.Limit(h.Attractions))
}

func AddHotelRoutes(router *httprouter.Router) {
	router.GET("/api/hotels", hotels.List)
	router.GET("/api/hotels/:hotelid", hotels.Get)
}

func AddRestaurantRoutes(router *httprouter.Router) {
	router.GET("/api/restaurants", restaurants.List)
	router.GET("/api/restaurants/:restaurantid", restaurants.Get)
}

func AddReviewRoutes(router *httprouter.Router) {
	router.GET("/api/reviews", reviews.List)
	router.POST("/api/reviews", middleware.Authenticate(reviews.Create))
	router.DELETE("/api/reviews/:reviewid", middleware.Authenticate(reviews.Delete))
}
