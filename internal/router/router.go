package router

import (
	"net/http"

	"flourshop/internal/config"
	"flourshop/internal/handlers"
	"flourshop/internal/middleware"
	"flourshop/internal/services"
	"flourshop/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(cfg config.Config, stores store.Stores, logger zerolog.Logger) (*mux.Router, error) {
	authService, err := services.NewAuthService(services.AuthConfig{
		Secret:      cfg.JWTSecret,
		TokenTTL:    cfg.JWTTTL,
		NeverExpire: cfg.JWTNeverExpire,
	}, logger)
	if err != nil {
		return nil, err
	}
	userService := services.NewUserService(stores.Users, logger)
	settingsService := services.NewSettingsService(stores.Settings, logger)
	productService := services.NewProductService(stores.Products, cfg.UploadDir, logger)
	contactService := services.NewContactService(stores.Contacts, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(20), 40)
	loginLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()

	// Public routes.
	api.Handle("/auth/login",
		loginLimiter.Middleware()(http.HandlerFunc(authHandler.Login))).Methods("POST")
	api.HandleFunc("/products", productHandler.GetAll).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.GetByID).Methods("GET")
	api.HandleFunc("/contacts", contactHandler.Create).Methods("POST")
	api.HandleFunc("/settings", settingsHandler.GetAll).Methods("GET")

	// Admin routes: the token gate runs before any handler, the role
	// gate after it.
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Authentication(authService, logger))
	admin.Use(middleware.RequireAdmin())
	admin.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	admin.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	admin.HandleFunc("/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/contacts", contactHandler.GetAll).Methods("GET")
	admin.HandleFunc("/contacts/{id}/status", contactHandler.UpdateStatus).Methods("PUT")
	admin.HandleFunc("/contacts/{id}", contactHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/settings", settingsHandler.Update).Methods("PUT")
	admin.HandleFunc("/uploads", uploadHandler.Upload).Methods("POST")

	// Stored images are served directly.
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r, nil
}
