package services

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeAlertStore is an in-memory stand-in with the same dedup visibility
// rules as the real repository, so back-to-back sweeps in a test see alerts
// created by the previous run.
type fakeAlertStore struct {
	alerts []models.Alert
}

func (f *fakeAlertStore) UnreadExists(_ context.Context, alertType, candidateID, jobID, assignmentID string) (bool, error) {
	for _, a := range f.alerts {
		if a.AlertType != alertType || a.CandidateID != candidateID || a.IsRead {
			continue
		}
		if jobID != "" && (a.JobID == nil || *a.JobID != jobID) {
			continue
		}
		if assignmentID != "" && (a.AssignmentID == nil || *a.AssignmentID != assignmentID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeAlertStore) CreatedSinceExists(_ context.Context, alertType, candidateID string, since time.Time) (bool, error) {
	for _, a := range f.alerts {
		if a.AlertType == alertType && a.CandidateID == candidateID && !a.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertStore) CreateBatch(_ context.Context, alerts []models.Alert) error {
	for _, a := range alerts {
		a.CreatedAt = time.Now()
		f.alerts = append(f.alerts, a)
	}
	return nil
}

func (f *fakeAlertStore) RemoveReadOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []models.Alert
	var removed int64
	for _, a := range f.alerts {
		if a.IsRead && a.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	f.alerts = kept
	return removed, nil
}

type mockAssignments struct {
	mock.Mock
}

func (m *mockAssignments) GetEndingBetween(ctx context.Context, from, to time.Time) ([]models.Assignment, error) {
	args := m.Called(ctx, from, to)
	assignments, _ := args.Get(0).([]models.Assignment)
	return assignments, args.Error(1)
}

type mockDocuments struct {
	mock.Mock
}

func (m *mockDocuments) GetExpiringBetween(ctx context.Context, from, to time.Time) ([]models.Document, error) {
	args := m.Called(ctx, from, to)
	documents, _ := args.Get(0).([]models.Document)
	return documents, args.Error(1)
}

type mockComms struct {
	mock.Mock
}

func (m *mockComms) Add(ctx context.Context, entry *models.CommunicationLog) error {
	return m.Called(ctx, entry).Error(0)
}

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) FindMatchesForJob(ctx context.Context, jobID string, minScore int) ([]models.CandidateMatch, error) {
	args := m.Called(ctx, jobID, minScore)
	matches, _ := args.Get(0).([]models.CandidateMatch)
	return matches, args.Error(1)
}

func (m *mockEngine) FindMatchesForCandidate(ctx context.Context, candidateID string, minScore int) ([]models.JobMatch, error) {
	args := m.Called(ctx, candidateID, minScore)
	matches, _ := args.Get(0).([]models.JobMatch)
	return matches, args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}

func endingAssignment(candidateID string, daysFromNow int) models.Assignment {
	end := time.Now().AddDate(0, 0, daysFromNow)
	return models.Assignment{
		AssignmentID: "ASG-" + candidateID,
		CandidateID:  candidateID,
		EndDate:      &end,
		Status:       models.AssignmentStatusActive,
		Candidate: &models.Candidate{
			CandidateID: candidateID,
			FirstName:   "Jordan",
			LastName:    "Reyes",
			Email:       "jordan@example.com",
		},
	}
}

func Test_ScanEndingAssignments_BackToBackRunsCreateOneAlert(t *testing.T) {

	assignments := &mockAssignments{}
	assignments.On("GetEndingBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Assignment{endingAssignment("CND-1", 10)}, nil)

	engine := &mockEngine{}
	engine.On("FindMatchesForCandidate", mock.Anything, "CND-1", endingAssignmentsMinScore).
		Return([]models.JobMatch{}, nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(engine, &mockCandidates{}, &mockJobs{}, assignments,
		&mockDocuments{}, store, &mockComms{}, nil)

	results, err := sweeper.ScanEndingAssignments(context.Background(), 28)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Len(t, store.alerts, 1)
	assert.Equal(t, models.AlertTypeContractEnding, store.alerts[0].AlertType)
	assert.Equal(t, models.AlertPriorityHigh, store.alerts[0].Priority)

	// No one marked the alert read, so the second sweep must stay quiet.
	results, err = sweeper.ScanEndingAssignments(context.Background(), 28)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Len(t, store.alerts, 1)
}

func Test_ScanEndingAssignments_MatchLookupFailureStillAlerts(t *testing.T) {

	assignments := &mockAssignments{}
	assignments.On("GetEndingBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Assignment{endingAssignment("CND-1", 21)}, nil)

	engine := &mockEngine{}
	engine.On("FindMatchesForCandidate", mock.Anything, "CND-1", endingAssignmentsMinScore).
		Return(nil, errors.New("db gone"))

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(engine, &mockCandidates{}, &mockJobs{}, assignments,
		&mockDocuments{}, store, &mockComms{}, nil)

	results, err := sweeper.ScanEndingAssignments(context.Background(), 28)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Empty(t, results[0].PotentialMatches)
	assert.Len(t, store.alerts, 1)
	assert.Equal(t, models.AlertPriorityNormal, store.alerts[0].Priority)
}

func Test_ScanExpiringDocuments_UrgentExpiryNotifiesAndDeduplicates(t *testing.T) {

	expiry := time.Now().AddDate(0, 0, 5)
	doc := models.Document{
		DocumentID:     "DOC-1",
		CandidateID:    "CND-1",
		DocumentType:   "RN License",
		ExpirationDate: &expiry,
		Candidate: &models.Candidate{
			CandidateID: "CND-1",
			FirstName:   "Jordan",
			Email:       "jordan@example.com",
		},
	}

	documents := &mockDocuments{}
	documents.On("GetExpiringBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Document{doc}, nil)

	sender := &mockSender{}
	sender.On("Send", "jordan@example.com", mock.Anything, mock.Anything).Return(nil).Once()

	comms := &mockComms{}
	comms.On("Add", mock.Anything, mock.Anything).Return(nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(&mockEngine{}, &mockCandidates{}, &mockJobs{},
		&mockAssignments{}, documents, store, comms, sender)

	result, err := sweeper.ScanExpiringDocuments(context.Background(), 30)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.DocumentsChecked)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.Len(t, store.alerts, 1)
	assert.Equal(t, models.AlertPriorityHigh, store.alerts[0].Priority)
	assert.True(t, store.alerts[0].NotificationSent)

	// Same-day rerun: the 7-day window still holds the first alert.
	result, err = sweeper.ScanExpiringDocuments(context.Background(), 30)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.AlertsCreated)
	assert.Equal(t, 0, result.NotificationsSent)
	assert.Len(t, store.alerts, 1)
	sender.AssertExpectations(t)
}

func Test_NotifyNewJobMatches_SuppressesUnreadDuplicates(t *testing.T) {

	job := &models.Job{JobID: "JOB-1", SpecialtyRequired: "ICU", State: "CA"}
	match := models.CandidateMatch{
		Candidate: models.Candidate{CandidateID: "CND-1", Email: "jordan@example.com"},
		Score:     90,
	}

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-1").Return(job, nil)

	engine := &mockEngine{}
	engine.On("FindMatchesForJob", mock.Anything, "JOB-1", newJobMatchesMinScore).
		Return([]models.CandidateMatch{match}, nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(engine, &mockCandidates{}, jobs, &mockAssignments{},
		&mockDocuments{}, store, &mockComms{}, nil)

	created, err := sweeper.NotifyNewJobMatches(context.Background(), "JOB-1", false)
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, models.AlertPriorityHigh, store.alerts[0].Priority)

	created, err = sweeper.NotifyNewJobMatches(context.Background(), "JOB-1", false)
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Len(t, store.alerts, 1)
}

func Test_NotifyNewJobMatches_WhenJobMissing_ShouldNoop(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-missing").Return(nil, nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(&mockEngine{}, &mockCandidates{}, jobs, &mockAssignments{},
		&mockDocuments{}, store, &mockComms{}, nil)

	created, err := sweeper.NotifyNewJobMatches(context.Background(), "JOB-missing", true)

	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Empty(t, store.alerts)
}

func Test_BatchMatchAllCandidates_SecondRunCreatesNothing(t *testing.T) {

	pool := []models.Candidate{{CandidateID: "CND-1"}}
	matches := []models.JobMatch{
		{Job: models.Job{JobID: "JOB-1", SpecialtyRequired: "ICU", State: "CA"}, Score: 80},
	}

	candidates := &mockCandidates{}
	candidates.On("GetActive", mock.Anything).Return(pool, nil)

	engine := &mockEngine{}
	engine.On("FindMatchesForCandidate", mock.Anything, "CND-1", 70).Return(matches, nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(engine, candidates, &mockJobs{}, &mockAssignments{},
		&mockDocuments{}, store, &mockComms{}, nil)

	result, err := sweeper.BatchMatchAllCandidates(context.Background(), 70)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.CandidatesProcessed)
	assert.Equal(t, 1, result.AlertsCreated)

	result, err = sweeper.BatchMatchAllCandidates(context.Background(), 70)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.CandidatesProcessed)
	assert.Equal(t, 0, result.AlertsCreated)
	assert.Len(t, store.alerts, 1)
}

func Test_BatchMatchAllCandidates_OneFailureDoesNotAbortSweep(t *testing.T) {

	pool := []models.Candidate{{CandidateID: "CND-bad"}, {CandidateID: "CND-good"}}

	candidates := &mockCandidates{}
	candidates.On("GetActive", mock.Anything).Return(pool, nil)

	engine := &mockEngine{}
	engine.On("FindMatchesForCandidate", mock.Anything, "CND-bad", 70).
		Return(nil, errors.New("scoring failed"))
	engine.On("FindMatchesForCandidate", mock.Anything, "CND-good", 70).
		Return([]models.JobMatch{{Job: models.Job{JobID: "JOB-1"}, Score: 75}}, nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(engine, candidates, &mockJobs{}, &mockAssignments{},
		&mockDocuments{}, store, &mockComms{}, nil)

	result, err := sweeper.BatchMatchAllCandidates(context.Background(), 70)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.CandidatesProcessed)
	assert.Equal(t, 1, result.AlertsCreated)
}

func Test_BatchMatchAllCandidates_CapsAlertsPerCandidate(t *testing.T) {

	pool := []models.Candidate{{CandidateID: "CND-1"}}
	var matches []models.JobMatch
	for _, id := range []string{"JOB-1", "JOB-2", "JOB-3", "JOB-4", "JOB-5"} {
		matches = append(matches, models.JobMatch{Job: models.Job{JobID: id}, Score: 80})
	}

	candidates := &mockCandidates{}
	candidates.On("GetActive", mock.Anything).Return(pool, nil)

	engine := &mockEngine{}
	engine.On("FindMatchesForCandidate", mock.Anything, "CND-1", 70).Return(matches, nil)

	store := &fakeAlertStore{}
	sweeper := NewAlertSweeper(engine, candidates, &mockJobs{}, &mockAssignments{},
		&mockDocuments{}, store, &mockComms{}, nil)

	result, err := sweeper.BatchMatchAllCandidates(context.Background(), 70)

	assert.NoError(t, err)
	assert.Equal(t, 5, result.TotalMatches)
	assert.Equal(t, maxAlertsPerCandidate, result.AlertsCreated)
}

func Test_CleanupOldAlerts_RemovesOnlyOldReadAlerts(t *testing.T) {

	store := &fakeAlertStore{alerts: []models.Alert{
		{AlertID: "ALT-old-read", IsRead: true, CreatedAt: time.Now().AddDate(0, 0, -120)},
		{AlertID: "ALT-old-unread", IsRead: false, CreatedAt: time.Now().AddDate(0, 0, -120)},
		{AlertID: "ALT-recent-read", IsRead: true, CreatedAt: time.Now().AddDate(0, 0, -10)},
	}}

	sweeper := NewAlertSweeper(&mockEngine{}, &mockCandidates{}, &mockJobs{},
		&mockAssignments{}, &mockDocuments{}, store, &mockComms{}, nil)

	removed, err := sweeper.CleanupOldAlerts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Len(t, store.alerts, 2)
}
