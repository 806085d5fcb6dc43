package routes

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/estatedesk/property_marketplace/backend/controllers"
	"github.com/estatedesk/property_marketplace/backend/middleware"
	"github.com/estatedesk/property_marketplace/backend/models"
	"github.com/estatedesk/property_marketplace/backend/store"
)

// Routes wires the route table. Role sets per path: search surfaces admit
// any authenticated role, owner mutations require owner, the approval queue
// requires admin.
func Routes(router *mux.Router, properties *store.PropertyStore, redisClient *redis.Client) {
	// Auth routes
	router.HandleFunc("/login", controllers.LoginUser()).Methods("POST")
	router.HandleFunc("/logout", controllers.LogoutUser()).Methods("POST")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	ownerOnly := middleware.RequireRoles(models.RoleOwner)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// Listing routes (any authenticated role)
	authenticated.HandleFunc("/properties", controllers.ListProperties(properties, redisClient)).Methods("GET")
	authenticated.HandleFunc("/properties/featured", controllers.FeaturedProperties(properties)).Methods("GET")
	authenticated.HandleFunc("/properties/{id:[0-9]+}", controllers.GetProperty(properties)).Methods("GET")

	// Owner routes
	authenticated.Handle("/properties", ownerOnly(controllers.CreateProperty(properties, redisClient))).Methods("POST")
	authenticated.Handle("/properties/{id:[0-9]+}", ownerOnly(controllers.UpdateProperty(properties, redisClient))).Methods("PUT")
	authenticated.Handle("/properties/{id:[0-9]+}", ownerOnly(controllers.DeleteProperty(properties, redisClient))).Methods("DELETE")
	authenticated.Handle("/owner/properties", ownerOnly(controllers.MyProperties(properties))).Methods("GET")

	// Admin routes
	authenticated.Handle("/admin/properties", adminOnly(controllers.AllProperties(properties))).Methods("GET")
	authenticated.Handle("/admin/pending", adminOnly(controllers.PendingProperties(properties))).Methods("GET")
	authenticated.Handle("/admin/properties/{id:[0-9]+}/approve", adminOnly(controllers.ApproveProperty(properties, redisClient))).Methods("POST")
	authenticated.Handle("/admin/properties/{id:[0-9]+}", adminOnly(controllers.RejectProperty(properties, redisClient))).Methods("DELETE")
	authenticated.Handle("/admin/stats", adminOnly(controllers.GetStats(properties))).Methods("GET")
}
