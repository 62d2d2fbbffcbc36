package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/purplecow/recruiting/internal/config"
	"github.com/purplecow/recruiting/internal/logger"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler owns the cron shell around the sweeps. A single runner executes
// entries one after another, which is what serializes concurrent sweeps.
type Scheduler struct {
	cron    *cron.Cron
	sweeper *AlertSweeper
	cfg     config.SchedulerConfig
}

func NewScheduler(sweeper *AlertSweeper, cfg config.SchedulerConfig) (*Scheduler, error) {

	if cfg.AssignmentDaysThreshold <= 0 || cfg.DocumentDaysThreshold <= 0 {
		return nil, errors.New("sweep day thresholds must be greater than zero")
	}

	s := &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		cfg:     cfg,
	}

	entries := []struct {
		spec string
		job  func()
	}{
		{"0 8 * * *", s.runDocumentScan},
		{"0 9 * * *", s.runAssignmentScan},
		{"0 7 * * 1", s.runBatchMatching},
		{"0 2 * * 0", s.runAlertCleanup},
	}
	for _, entry := range entries {
		if _, err := s.cron.AddFunc(entry.spec, entry.job); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Infof("sweep scheduler started: documents every day 08:00, assignments 09:00, "+
		"batch matching Mondays 07:00, cleanup Sundays 02:00 (thresholds: %d/%d days, batch min score %d)",
		s.cfg.DocumentDaysThreshold, s.cfg.AssignmentDaysThreshold, s.cfg.BatchMinScore)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runAssignmentScan() {
	results, err := s.sweeper.ScanEndingAssignments(context.Background(), s.cfg.AssignmentDaysThreshold)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSweep).
			Errorf("ending-assignments sweep failed: %v", err)
		return
	}
	log.Infof("ending-assignments sweep handled %d assignments", len(results))
}

func (s *Scheduler) runDocumentScan() {
	result, err := s.sweeper.ScanExpiringDocuments(context.Background(), s.cfg.DocumentDaysThreshold)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSweep).
			Errorf("expiring-documents sweep failed: %v", err)
		return
	}
	log.Infof("expiring-documents sweep checked %d documents", result.DocumentsChecked)
}

func (s *Scheduler) runBatchMatching() {
	result, err := s.sweeper.BatchMatchAllCandidates(context.Background(), s.cfg.BatchMinScore)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSweep).
			Errorf("batch matching sweep failed: %v", err)
		return
	}
	log.Infof("batch matching processed %d candidates", result.CandidatesProcessed)
}

func (s *Scheduler) runAlertCleanup() {
	removed, err := s.sweeper.CleanupOldAlerts(context.Background())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("alert cleanup failed: %v", err)
		return
	}
	log.Infof("alert cleanup removed %d old alerts", removed)
}
