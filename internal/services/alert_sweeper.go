package services

import (
	"context"
	"fmt"
	"time"

	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/purplecow/recruiting/internal/logger"
	"github.com/purplecow/recruiting/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type assignmentSource interface {
	GetEndingBetween(ctx context.Context, from, to time.Time) ([]models.Assignment, error)
}

type documentSource interface {
	GetExpiringBetween(ctx context.Context, from, to time.Time) ([]models.Document, error)
}

type alertStore interface {
	UnreadExists(ctx context.Context, alertType, candidateID, jobID, assignmentID string) (bool, error)
	CreatedSinceExists(ctx context.Context, alertType, candidateID string, since time.Time) (bool, error)
	CreateBatch(ctx context.Context, alerts []models.Alert) error
	RemoveReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type communicationStore interface {
	Add(ctx context.Context, entry *models.CommunicationLog) error
}

type matchFinder interface {
	FindMatchesForJob(ctx context.Context, jobID string, minScore int) ([]models.CandidateMatch, error)
	FindMatchesForCandidate(ctx context.Context, candidateID string, minScore int) ([]models.JobMatch, error)
}

type notificationSender interface {
	Send(to, subject, htmlBody string) error
}

const (
	endingAssignmentsMinScore = 60
	newJobMatchesMinScore     = 70
	highPriorityScore         = 85
	maxMatchesPerAssignment   = 5
	maxNotificationsPerJob    = 10
	maxAlertsPerCandidate     = 3
	documentDedupWindow       = 7 * 24 * time.Hour
	alertRetention            = 90 * 24 * time.Hour
)

// AlertSweeper runs the periodic alert-producing passes on top of the
// matching engine. Each sweep batches its alert writes and commits them once
// at the end; sweeps are expected to run one at a time (single cron runner).
type AlertSweeper struct {
	engine      matchFinder
	candidates  candidateSource
	jobs        jobSource
	assignments assignmentSource
	documents   documentSource
	alerts      alertStore
	comms       communicationStore
	sender      notificationSender
}

func NewAlertSweeper(engine matchFinder, candidates candidateSource, jobs jobSource,
	assignments assignmentSource, documents documentSource, alerts alertStore,
	comms communicationStore, sender notificationSender) *AlertSweeper {

	return &AlertSweeper{
		engine:      engine,
		candidates:  candidates,
		jobs:        jobs,
		assignments: assignments,
		documents:   documents,
		alerts:      alerts,
		comms:       comms,
		sender:      sender,
	}
}

// ScanEndingAssignments creates contract_ending alerts for active assignments
// ending within daysThreshold days, suppressing duplicates of an unread alert
// for the same candidate. Match suggestions are informational and never gate
// alert creation.
func (s *AlertSweeper) ScanEndingAssignments(ctx context.Context, daysThreshold int) ([]models.EndingAssignment, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("ending_assignments").Observe(time.Since(start).Seconds())
	}()

	today := startOfDay(time.Now())
	cutoff := today.AddDate(0, 0, daysThreshold)

	assignments, err := s.assignments.GetEndingBetween(ctx, today, cutoff)
	if err != nil {
		return nil, err
	}

	results := []models.EndingAssignment{}
	var pending []models.Alert
	seen := map[string]struct{}{}

	for _, assignment := range assignments {
		if assignment.EndDate == nil || assignment.Candidate == nil {
			log.Warnf("skipping assignment %v: missing end date or candidate", assignment.AssignmentID)
			continue
		}

		daysRemaining := daysBetween(today, *assignment.EndDate)

		exists, err := s.alerts.UnreadExists(ctx, models.AlertTypeContractEnding, assignment.CandidateID, "", "")
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to check existing alert for candidate %v: %v", assignment.CandidateID, err)
			continue
		}

		key := models.AlertTypeContractEnding + "|" + assignment.CandidateID
		if _, inRun := seen[key]; !exists && !inRun {
			assignmentID := assignment.AssignmentID
			pending = append(pending, models.Alert{
				AlertType:      models.AlertTypeContractEnding,
				CandidateID:    assignment.CandidateID,
				AssignmentID:   &assignmentID,
				Priority:       contractEndingPriority(daysRemaining),
				Title:          fmt.Sprintf("Assignment ending in %d days", daysRemaining),
				Message:        fmt.Sprintf("Time to find next placement for %s!", assignment.Candidate.FullName()),
				ActionRequired: true,
			})
			seen[key] = struct{}{}
		}

		matches, err := s.engine.FindMatchesForCandidate(ctx, assignment.CandidateID, endingAssignmentsMinScore)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeMatching).
				Errorf("failed to find matches for candidate %v: %v", assignment.CandidateID, err)
			matches = nil
		}
		if len(matches) > maxMatchesPerAssignment {
			matches = matches[:maxMatchesPerAssignment]
		}

		results = append(results, models.EndingAssignment{
			Assignment:       assignment,
			Candidate:        *assignment.Candidate,
			DaysRemaining:    daysRemaining,
			PotentialMatches: matches,
		})
	}

	if err := s.alerts.CreateBatch(ctx, pending); err != nil {
		return nil, err
	}
	metrics.AlertsCreatedCounter.WithLabelValues(models.AlertTypeContractEnding).Add(float64(len(pending)))

	log.Infof("ending-assignments sweep: %d assignments, %d alerts created", len(results), len(pending))
	return results, nil
}

// ScanExpiringDocuments creates document_expiring alerts for documents
// expiring within daysThreshold days. Duplicates are suppressed for 7 days
// regardless of read state. Documents within 7 days of expiry also trigger a
// renewal notification.
func (s *AlertSweeper) ScanExpiringDocuments(ctx context.Context, daysThreshold int) (models.DocumentScanResult, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("expiring_documents").Observe(time.Since(start).Seconds())
	}()

	var result models.DocumentScanResult

	today := startOfDay(time.Now())
	cutoff := today.AddDate(0, 0, daysThreshold)

	documents, err := s.documents.GetExpiringBetween(ctx, today, cutoff)
	if err != nil {
		return result, err
	}

	var pending []models.Alert
	seen := map[string]struct{}{}

	for _, doc := range documents {
		result.DocumentsChecked++

		if doc.ExpirationDate == nil {
			continue
		}
		daysUntilExpiry := daysBetween(today, *doc.ExpirationDate)

		exists, err := s.alerts.CreatedSinceExists(ctx, models.AlertTypeDocumentExpiring, doc.CandidateID,
			time.Now().Add(-documentDedupWindow))
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to check existing document alert for candidate %v: %v", doc.CandidateID, err)
			continue
		}

		key := models.AlertTypeDocumentExpiring + "|" + doc.CandidateID
		if _, inRun := seen[key]; exists || inRun {
			continue
		}
		seen[key] = struct{}{}

		alert := models.Alert{
			AlertType:      models.AlertTypeDocumentExpiring,
			CandidateID:    doc.CandidateID,
			Priority:       documentExpiryPriority(daysUntilExpiry),
			Title:          fmt.Sprintf("%s expiring soon", doc.DocumentType),
			Message:        fmt.Sprintf("%s expires in %d days - renewal needed", doc.DocumentType, daysUntilExpiry),
			ActionRequired: true,
		}

		if daysUntilExpiry <= 7 && doc.Candidate != nil {
			if err := s.sendRenewalNotification(ctx, doc, daysUntilExpiry); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeMail).
					Errorf("failed to send renewal notification for document %v: %v", doc.DocumentID, err)
			} else {
				alert.NotificationSent = true
				result.NotificationsSent++
			}
		}

		pending = append(pending, alert)
		result.AlertsCreated++
	}

	if err := s.alerts.CreateBatch(ctx, pending); err != nil {
		return result, err
	}
	metrics.AlertsCreatedCounter.WithLabelValues(models.AlertTypeDocumentExpiring).Add(float64(len(pending)))

	log.Infof("expiring-documents sweep: %d documents, %d alerts, %d notifications",
		result.DocumentsChecked, result.AlertsCreated, result.NotificationsSent)
	return result, nil
}

// NotifyNewJobMatches alerts the top candidates for a newly opened job.
// Duplicate unread (new_match, candidate, job) alerts are suppressed. Returns
// the number of alerts created.
func (s *AlertSweeper) NotifyNewJobMatches(ctx context.Context, jobID string, autoSend bool) (int, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("new_job_matches").Observe(time.Since(start).Seconds())
	}()

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, nil
	}

	matches, err := s.engine.FindMatchesForJob(ctx, jobID, newJobMatchesMinScore)
	if err != nil {
		return 0, err
	}
	if len(matches) > maxNotificationsPerJob {
		matches = matches[:maxNotificationsPerJob]
	}

	var pending []models.Alert
	for _, match := range matches {
		exists, err := s.alerts.UnreadExists(ctx, models.AlertTypeNewMatch, match.Candidate.CandidateID, jobID, "")
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to check existing match alert for candidate %v: %v", match.Candidate.CandidateID, err)
			continue
		}
		if exists {
			continue
		}

		id := jobID
		pending = append(pending, models.Alert{
			AlertType:   models.AlertTypeNewMatch,
			CandidateID: match.Candidate.CandidateID,
			JobID:       &id,
			Priority:    matchPriority(match.Score),
			Title:       fmt.Sprintf("New %s opportunity", job.SpecialtyRequired),
			Message: fmt.Sprintf("New %s role in %s - %d%% match!",
				job.SpecialtyRequired, job.State, match.Score),
			ActionRequired: true,
		})

		if autoSend {
			if err := s.sendMatchNotification(ctx, &match.Candidate, job, match.Score); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeMail).
					Errorf("failed to notify candidate %v: %v", match.Candidate.CandidateID, err)
			}
		}
	}

	if err := s.alerts.CreateBatch(ctx, pending); err != nil {
		return 0, err
	}
	metrics.AlertsCreatedCounter.WithLabelValues(models.AlertTypeNewMatch).Add(float64(len(pending)))

	return len(pending), nil
}

// BatchMatchAllCandidates runs candidate-centric matching for the whole
// active pool, alerting the top 3 matches per candidate. A failure on one
// candidate is logged and never aborts the sweep.
func (s *AlertSweeper) BatchMatchAllCandidates(ctx context.Context, minScore int) (models.BatchMatchResult, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("batch_matching").Observe(time.Since(start).Seconds())
	}()

	var result models.BatchMatchResult

	pool, err := s.candidates.GetActive(ctx)
	if err != nil {
		return result, err
	}

	var pending []models.Alert
	seen := map[string]struct{}{}

	for _, candidate := range pool {
		matches, err := s.engine.FindMatchesForCandidate(ctx, candidate.CandidateID, minScore)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeMatching).
				Errorf("batch matching failed for candidate %v: %v", candidate.CandidateID, err)
			continue
		}

		result.CandidatesProcessed++
		result.TotalMatches += len(matches)

		if len(matches) > maxAlertsPerCandidate {
			matches = matches[:maxAlertsPerCandidate]
		}

		for _, match := range matches {
			exists, err := s.alerts.UnreadExists(ctx, models.AlertTypeNewMatch,
				candidate.CandidateID, match.Job.JobID, "")
			if err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to check existing match alert for candidate %v: %v", candidate.CandidateID, err)
				continue
			}

			key := candidate.CandidateID + "|" + match.Job.JobID
			if _, inRun := seen[key]; exists || inRun {
				continue
			}
			seen[key] = struct{}{}

			jobID := match.Job.JobID
			pending = append(pending, models.Alert{
				AlertType:   models.AlertTypeNewMatch,
				CandidateID: candidate.CandidateID,
				JobID:       &jobID,
				Priority:    models.AlertPriorityNormal,
				Title:       fmt.Sprintf("Great match: %s", match.Job.SpecialtyRequired),
				Message: fmt.Sprintf("%d%% compatibility - %s, %s",
					match.Score, match.Job.Facility, match.Job.State),
			})
			result.AlertsCreated++
		}
	}

	if err := s.alerts.CreateBatch(ctx, pending); err != nil {
		return result, err
	}
	metrics.AlertsCreatedCounter.WithLabelValues(models.AlertTypeNewMatch).Add(float64(len(pending)))

	log.Infof("batch matching: %d candidates, %d matches, %d alerts created",
		result.CandidatesProcessed, result.TotalMatches, result.AlertsCreated)
	return result, nil
}

// CleanupOldAlerts deletes read alerts older than 90 days.
func (s *AlertSweeper) CleanupOldAlerts(ctx context.Context) (int64, error) {
	return s.alerts.RemoveReadOlderThan(ctx, time.Now().Add(-alertRetention))
}

func (s *AlertSweeper) sendMatchNotification(ctx context.Context, candidate *models.Candidate, job *models.Job, score int) error {
	subject := fmt.Sprintf("New Opportunity: %s in %s", job.SpecialtyRequired, job.State)
	body := fmt.Sprintf("<p>Hi %s,</p><p>We found a %d%% match for you: a %s role at %s in %s, %s.</p>",
		candidate.FirstName, score, job.SpecialtyRequired, job.Facility, job.City, job.State)

	if s.sender != nil {
		if err := s.sender.Send(candidate.Email, subject, body); err != nil {
			return err
		}
		metrics.NotificationsSentCounter.Inc()
	}

	jobID := job.JobID
	return s.comms.Add(ctx, &models.CommunicationLog{
		CandidateID:       candidate.CandidateID,
		JobID:             &jobID,
		CommunicationType: "email",
		Direction:         "outbound",
		Subject:           subject,
		Body:              body,
		TemplateUsed:      "new_match_notification",
		Status:            "sent",
	})
}

func (s *AlertSweeper) sendRenewalNotification(ctx context.Context, doc models.Document, daysUntilExpiry int) error {
	subject := fmt.Sprintf("Action needed: %s expires in %d days", doc.DocumentType, daysUntilExpiry)
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your %s expires in %d days. Please send us the renewed document.</p>",
		doc.Candidate.FirstName, doc.DocumentType, daysUntilExpiry)

	if s.sender != nil {
		if err := s.sender.Send(doc.Candidate.Email, subject, body); err != nil {
			return err
		}
		metrics.NotificationsSentCounter.Inc()
	}

	return s.comms.Add(ctx, &models.CommunicationLog{
		CandidateID:       doc.CandidateID,
		CommunicationType: "email",
		Direction:         "outbound",
		Subject:           subject,
		Body:              body,
		TemplateUsed:      "document_renewal_reminder",
		Status:            "sent",
	})
}

func contractEndingPriority(daysRemaining int) string {
	if daysRemaining <= 14 {
		return models.AlertPriorityHigh
	}
	return models.AlertPriorityNormal
}

func documentExpiryPriority(daysUntilExpiry int) string {
	if daysUntilExpiry <= 7 {
		return models.AlertPriorityHigh
	}
	return models.AlertPriorityNormal
}

func matchPriority(score int) string {
	if score >= highPriorityScore {
		return models.AlertPriorityHigh
	}
	return models.AlertPriorityNormal
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
