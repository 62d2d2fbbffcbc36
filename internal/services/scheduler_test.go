package services

import (
	"testing"

	"github.com/purplecow/recruiting/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_NewScheduler_RejectsNonPositiveThresholds(t *testing.T) {

	sweeper := NewAlertSweeper(&mockEngine{}, &mockCandidates{}, &mockJobs{},
		&mockAssignments{}, &mockDocuments{}, &fakeAlertStore{}, &mockComms{}, nil)

	_, err := NewScheduler(sweeper, config.SchedulerConfig{
		AssignmentDaysThreshold: 0,
		DocumentDaysThreshold:   30,
	})
	assert.Error(t, err)

	scheduler, err := NewScheduler(sweeper, config.SchedulerConfig{
		AssignmentDaysThreshold: 28,
		DocumentDaysThreshold:   30,
		BatchMinScore:           70,
	})
	assert.NoError(t, err)
	scheduler.Stop()
}
