package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/donation"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/payment"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/site"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/sms"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	if err := database.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := createUploadDirs(cfg); err != nil {
		log.Fatalf("Failed to create upload directories: %v", err)
	}

	processor := donation.NewProcessor(database.GetDB(), payment.New(cfg), sms.New(cfg))
	site.Setup(cfg, processor)

	r := initRouter(cfg)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	addr := ":" + cfg.Port
	go func() {
		log.Printf("Running on http://localhost%s", addr)
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")

	database.CloseDB()
}

// setupLogging tees the log to the configured file alongside stderr.
func setupLogging(cfg *config.Config) {
	if cfg.LogFile == "" {
		return
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("Could not open log file %s: %v", cfg.LogFile, err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
}

func createUploadDirs(cfg *config.Config) error {
	for _, kind := range []string{"photos", "videos", "documents"} {
		if err := os.MkdirAll(filepath.Join(cfg.UploadFolder, kind), 0o755); err != nil {
			return err
		}
	}
	return nil
}

func initRouter(cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)
	r.Use(site.TryPutAdminInContextMiddleware)

	r.Get("/", site.HomePage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", site.HealthCheck)

		r.Post("/admin/login", site.AdminLogin)

		r.Post("/photos/upload", site.UploadPhotos)
		r.Get("/photos/list", site.ListPhotos)
		r.Post("/videos/upload", site.UploadVideos)
		r.Get("/videos/list", site.ListVideos)
		r.Post("/documents/upload", site.UploadDocuments)
		r.Get("/documents/list", site.ListDocuments)

		r.Post("/news/create", site.CreateNews)
		r.Get("/news/list", site.ListNews)

		r.Post("/donation/process", site.ProcessDonation)

		r.With(site.AdminOnlyMiddleware).Route("/donations", func(r chi.Router) {
			r.Get("/list", site.ListDonations)
			r.Get("/stats", site.DonationStats)
		})

		r.Post("/contact/submit", site.SubmitContact)
		r.With(site.AdminOnlyMiddleware).Post("/contact/{messageID}/read", site.MarkContactRead)
	})

	fileServer := http.FileServer(http.Dir(cfg.UploadFolder))
	r.Handle("/uploads/*", http.StripPrefix("/uploads", fileServer))

	return r
}
