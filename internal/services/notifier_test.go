package services

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/purplecow/recruiting/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_MatchNotifier_RunsSweepOnJobOpened(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-1").Return(nil, nil).Once()

	sweeper := NewAlertSweeper(&mockEngine{}, &mockCandidates{}, jobs, &mockAssignments{},
		&mockDocuments{}, &fakeAlertStore{}, &mockComms{}, nil)

	bus := EventBus.New()
	notifier, err := NewMatchNotifier(bus, sweeper, false)
	assert.NoError(t, err)
	defer notifier.Stop()

	bus.Publish(events.JobOpenedTopic, events.JobOpened{JobID: "JOB-1", Specialty: "ICU", State: "CA"})
	bus.WaitAsync()

	jobs.AssertExpectations(t)
}
