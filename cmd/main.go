package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/purplecow/recruiting/internal/api"
	"github.com/purplecow/recruiting/internal/clients/mail"
	"github.com/purplecow/recruiting/internal/config"
	"github.com/purplecow/recruiting/internal/logger"
	"github.com/purplecow/recruiting/internal/metrics"
	"github.com/purplecow/recruiting/internal/repositories"
	"github.com/purplecow/recruiting/internal/services"
	log "github.com/sirupsen/logrus"
)

func newMailClient(cfg config.MailConfig) *mail.Client {
	client := mail.NewClient(cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.From)
	client.SetRateLimit(cfg.MaxRequestsPerSecond)
	return client
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(fmt.Sprintf(":%d", cfg.Server.MetricsPort))

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	candidates := repositories.NewCandidatesRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)
	assignments := repositories.NewAssignmentsRepository(dbContext.DB)
	documents := repositories.NewDocumentsRepository(dbContext.DB)
	alerts := repositories.NewAlertsRepository(dbContext.DB)
	rules := repositories.NewRulesRepository(dbContext.DB)
	comms := repositories.NewCommunicationsRepository(dbContext.DB)

	engine := services.NewMatchingEngine(candidates, jobs, rules)

	var sweeper *services.AlertSweeper
	if cfg.Mail.Enabled {
		sweeper = services.NewAlertSweeper(engine, candidates, jobs, assignments, documents,
			alerts, comms, newMailClient(cfg.Mail))
	} else {
		sweeper = services.NewAlertSweeper(engine, candidates, jobs, assignments, documents,
			alerts, comms, nil)
	}

	bus := EventBus.New()

	notifier, err := services.NewMatchNotifier(bus, sweeper, cfg.Mail.AutoSendMatches)
	if err != nil {
		log.Fatalf("can't create match notifier: %v", err)
	}
	defer notifier.Stop()

	if cfg.Scheduler.Enabled {
		scheduler, err := services.NewScheduler(sweeper, cfg.Scheduler)
		if err != nil {
			log.Fatalf("can't create scheduler: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := api.NewServer(cfg.Server, bus, engine, sweeper, dbContext)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("can't run api server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	if err := server.Shutdown(); err != nil {
		log.Errorf("api server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
