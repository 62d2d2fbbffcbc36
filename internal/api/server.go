package api

import (
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	gocache "github.com/patrickmn/go-cache"
	"github.com/purplecow/recruiting/internal/config"
	"github.com/purplecow/recruiting/internal/repositories"
	"github.com/purplecow/recruiting/internal/services"
)

// Server wires the HTTP surface: CRUD over the record store, the matching
// endpoints, and auth. Handlers stay thin; everything with logic lives in
// services.
type Server struct {
	app        *fiber.App
	cfg        config.ServerConfig
	validate   *validator.Validate
	bus        EventBus.Bus
	matchCache *gocache.Cache

	engine  *services.MatchingEngine
	sweeper *services.AlertSweeper

	candidates  *repositories.Candidates
	jobs        *repositories.Jobs
	assignments *repositories.Assignments
	documents   *repositories.Documents
	expenses    *repositories.Expenses
	alerts      *repositories.Alerts
	rules       *repositories.Rules
	users       *repositories.Users
	comms       *repositories.Communications
}

func NewServer(cfg config.ServerConfig, bus EventBus.Bus, engine *services.MatchingEngine,
	sweeper *services.AlertSweeper, db *repositories.DbContext) *Server {

	s := &Server{
		app:        fiber.New(),
		cfg:        cfg,
		validate:   validator.New(),
		bus:        bus,
		matchCache: gocache.New(2*time.Minute, 5*time.Minute),
		engine:     engine,
		sweeper:    sweeper,

		candidates:  repositories.NewCandidatesRepository(db.DB),
		jobs:        repositories.NewJobsRepository(db.DB),
		assignments: repositories.NewAssignmentsRepository(db.DB),
		documents:   repositories.NewDocumentsRepository(db.DB),
		expenses:    repositories.NewExpensesRepository(db.DB),
		alerts:      repositories.NewAlertsRepository(db.DB),
		rules:       repositories.NewRulesRepository(db.DB),
		users:       repositories.NewUsersRepository(db.DB),
		comms:       repositories.NewCommunicationsRepository(db.DB),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := s.app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)

	protected := v1.Group("", s.authMiddleware())

	candidates := protected.Group("/candidates")
	candidates.Post("/", s.createCandidate)
	candidates.Get("/", s.listCandidates)
	candidates.Get("/:id", s.getCandidate)
	candidates.Put("/:id", s.updateCandidate)
	candidates.Delete("/:id", s.deleteCandidate)
	candidates.Get("/:id/matches", s.candidateMatches)
	candidates.Get("/:id/documents", s.candidateDocuments)
	candidates.Get("/:id/expenses", s.candidateExpenses)
	candidates.Get("/:id/communications", s.candidateCommunications)

	jobs := protected.Group("/jobs")
	jobs.Post("/", s.createJob)
	jobs.Get("/", s.listJobs)
	jobs.Get("/:id", s.getJob)
	jobs.Put("/:id", s.updateJob)
	jobs.Delete("/:id", s.deleteJob)
	jobs.Get("/:id/matches", s.jobMatches)
	jobs.Post("/:id/notify-matches", s.notifyJobMatches)

	assignments := protected.Group("/assignments")
	assignments.Post("/", s.createAssignment)
	assignments.Get("/", s.listAssignments)
	assignments.Get("/:id", s.getAssignment)
	assignments.Put("/:id", s.updateAssignment)

	documents := protected.Group("/documents")
	documents.Post("/", s.createDocument)
	documents.Get("/:id", s.getDocument)
	documents.Put("/:id", s.updateDocument)
	documents.Delete("/:id", s.deleteDocument)

	expenses := protected.Group("/expenses")
	expenses.Post("/", s.createExpense)
	expenses.Get("/:id", s.getExpense)
	expenses.Put("/:id", s.updateExpense)
	expenses.Delete("/:id", s.deleteExpense)

	alerts := protected.Group("/alerts")
	alerts.Get("/", s.listUnreadAlerts)
	alerts.Put("/:id/read", s.markAlertRead)

	rules := protected.Group("/matching-rules")
	rules.Post("/", s.createRule)
	rules.Get("/", s.listRules)
	rules.Get("/:id", s.getRule)
	rules.Put("/:id", s.updateRule)
	rules.Delete("/:id", s.deleteRule)

	matching := protected.Group("/matching")
	matching.Post("/batch", s.runBatchMatching)
}

func (s *Server) Run() error {
	return s.app.Listen(fmt.Sprintf(":%d", s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
