package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/neuronova/backend/internal/handler"
	"github.com/neuronova/backend/internal/logging"
	"github.com/neuronova/backend/internal/notify"
	"github.com/neuronova/backend/internal/repository"
	"github.com/neuronova/backend/internal/service"
	"github.com/neuronova/backend/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		logging.Fatal("MONGO_URL is required")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		logging.Fatal("DB_NAME is required")
	}

	senderEmail := os.Getenv("SENDER_EMAIL")
	if senderEmail == "" {
		senderEmail = "noreply@neuronova.com"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "serviceneuronova@gmail.com"
	}
	corsOrigins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// Admin listings ship without authentication; deployments that do not
	// front them with an access-controlled proxy should disable them here.
	exposeAdmin := os.Getenv("EXPOSE_ADMIN_ENDPOINTS") != "false"

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.Connect(connectCtx, mongoURL)
	cancelConnect()
	if err != nil {
		logging.Fatal("failed to connect to mongodb", "error", err)
	}
	db := client.Database(dbName)

	sg := mailer.NewSendGrid(os.Getenv("SENDGRID_API_KEY"), senderEmail)
	if !sg.Enabled() {
		slog.Warn("SENDGRID_API_KEY not set, email notifications disabled")
	}
	notifier := notify.New(sg, adminEmail)

	contactRepo := repository.NewMongoContactRepository(db)
	quoteRepo := repository.NewMongoQuoteRepository(db)
	testimonialRepo := repository.NewMongoTestimonialRepository(db)

	contactService := service.NewContactService(contactRepo, notifier)
	quoteService := service.NewQuoteService(quoteRepo, notifier)
	testimonialService := service.NewTestimonialService(testimonialRepo)

	h := handler.New(db, corsOrigins)
	contactHandler := handler.NewContactHandler(contactService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	catalogHandler := handler.NewCatalogHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/services-pricing", catalogHandler.ServicesPricing)
	mux.HandleFunc("GET /api/packs", catalogHandler.Packs)
	mux.HandleFunc("GET /api/services", catalogHandler.Services)
	mux.HandleFunc("POST /api/quotes", quoteHandler.Submit)
	mux.HandleFunc("GET /api/quotes/{id}", quoteHandler.Get)
	mux.HandleFunc("GET /api/quotes/client/{email}", quoteHandler.ListByClient)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/testimonials", testimonialHandler.List)

	if exposeAdmin {
		mux.HandleFunc("GET /api/contacts", contactHandler.List)
		mux.HandleFunc("GET /api/quotes", quoteHandler.List)
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.RequestLogger(h.CORS(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("mongodb disconnect error", "error", err)
	}
}
