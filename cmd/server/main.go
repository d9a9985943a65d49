package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dkovac/folio/internal/auth"
	"github.com/dkovac/folio/internal/config"
	"github.com/dkovac/folio/internal/database"
	"github.com/dkovac/folio/internal/mail"
	postgresrepo "github.com/dkovac/folio/internal/repository/postgres"
	"github.com/dkovac/folio/internal/service"
	"github.com/dkovac/folio/internal/transport/http/handlers"
	"github.com/dkovac/folio/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("connected to database", "max_conns", cfg.DBMaxConns)

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	infoRepo := postgresrepo.NewInfoRepo(pool)
	certificateRepo := postgresrepo.NewCertificateRepo(pool)
	projectRepo := postgresrepo.NewProjectRepo(pool)
	skillRepo := postgresrepo.NewSkillRepo(pool)

	// Auth
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	guard := auth.NewGuard(tokens)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	infoService := service.NewInfoService(infoRepo)
	certificateService := service.NewCertificateService(certificateRepo)
	projectService := service.NewProjectService(projectRepo)
	skillService := service.NewSkillService(skillRepo)

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	contactService := service.NewContactService(mailer, cfg.ContactTo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, guard)
	infoHandler := handlers.NewInfoHandler(infoService, guard)
	certificateHandler := handlers.NewCertificateHandler(certificateService, guard)
	projectHandler := handlers.NewProjectHandler(projectService, guard)
	skillHandler := handlers.NewSkillHandler(skillService, guard)
	contactHandler := handlers.NewContactHandler(contactService)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Auth
	mux.HandleFunc("POST /api/admin/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/admin/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/admin/auth/me", authHandler.Me)

	// Admin - certificates ("achievements")
	mux.HandleFunc("POST /api/admin/v1/achievements", certificateHandler.Create)
	mux.HandleFunc("GET /api/admin/v1/achievements/{id}", certificateHandler.Get)
	mux.HandleFunc("PUT /api/admin/v1/achievements/{id}", certificateHandler.Update)
	mux.HandleFunc("DELETE /api/admin/v1/achievements/{id}", certificateHandler.Delete)

	// Admin - projects
	mux.HandleFunc("POST /api/admin/v1/projects", projectHandler.Create)
	mux.HandleFunc("GET /api/admin/v1/projects/{id}", projectHandler.Get)
	mux.HandleFunc("PUT /api/admin/v1/projects/{id}", projectHandler.Update)
	mux.HandleFunc("DELETE /api/admin/v1/projects/{id}", projectHandler.Delete)

	// Admin - skills
	mux.HandleFunc("POST /api/admin/v1/skills", skillHandler.Create)
	mux.HandleFunc("GET /api/admin/v1/skills/{id}", skillHandler.Get)
	mux.HandleFunc("PUT /api/admin/v1/skills/{id}", skillHandler.Update)
	mux.HandleFunc("DELETE /api/admin/v1/skills/{id}", skillHandler.Delete)

	// Admin - singleton profile
	mux.HandleFunc("PUT /api/admin/v1/info", infoHandler.Upsert)

	// Public reads
	mux.HandleFunc("GET /api/v1/info", infoHandler.GetPublic)
	mux.HandleFunc("GET /api/v1/achievements", certificateHandler.ListPublic)
	mux.HandleFunc("GET /api/v1/projects", projectHandler.ListPublic)
	mux.HandleFunc("GET /api/v1/skills", skillHandler.ListPublic)

	// Public contact form
	mux.HandleFunc("POST /api/v1/contacts", contactHandler.Send)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, middleware.CORS(mux)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
