package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/crm-backend/internal/infra/database"
	"github.com/xavierca1/crm-backend/internal/infra/http/handlers"
	appmw "github.com/xavierca1/crm-backend/internal/infra/http/middleware"
	"github.com/xavierca1/crm-backend/internal/infra/mail"
	"github.com/xavierca1/crm-backend/internal/infra/queue"
	"github.com/xavierca1/crm-backend/internal/infra/token"
	"github.com/xavierca1/crm-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	// The pool is kept even when the first ping fails: store-gated routes
	// answer 503 until the database comes up, and login falls back to the
	// configured admin in the meantime.
	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		if db == nil {
			log.Fatalf("opening database: %v", err)
		}
		log.Printf("database not reachable at startup: %v", err)
	}
	defer db.Close()

	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)

	jwtManager := token.NewJWTManager(os.Getenv("JWT_SECRET"), token.DefaultTTL)
	admin := usecase.AdminCredentials{
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}

	var mailer usecase.WelcomeMailer
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailer = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
	}

	// Lead-import worker: the only writer of leads in this service.
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("connecting to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		worker := queue.NewWorker(rabbitMQ.Ch, leadRepo)
		go worker.Start(queue.QueueName)
	}

	loginUC := usecase.NewLoginUseCase(userRepo, jwtManager, admin)
	signupUC := usecase.NewSignupUseCase(userRepo, jwtManager, mailer)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	getUC := usecase.NewGetLeadUseCase(leadRepo)
	statsUC := usecase.NewLeadStatsUseCase(leadRepo)

	authHandler := handlers.NewAuthHandler(loginUC, signupUC)
	leadHandler := handlers.NewLeadHandler(listUC, getUC, statsUC)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(appmw.Metrics)

	r.Get("/health", handlers.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		// Login stays reachable with the store down; signup does not.
		r.Post("/login", authHandler.HandleLogin)
		r.With(appmw.RequireStore(db)).Post("/signup", authHandler.HandleSignup)
	})

	r.Route("/leads", func(r chi.Router) {
		r.Use(appmw.RequireAuth(jwtManager))
		r.Use(appmw.RequireStore(db))
		r.Get("/", leadHandler.HandleList)
		r.Get("/stats", leadHandler.HandleStats)
		r.Get("/{id}", leadHandler.HandleGetByID)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("CRM API listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
