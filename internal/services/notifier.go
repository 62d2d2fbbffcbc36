package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/purplecow/recruiting/internal/events"
	"github.com/purplecow/recruiting/internal/logger"
	log "github.com/sirupsen/logrus"
)

// MatchNotifier bridges job-opened events to the new-job notification sweep.
type MatchNotifier struct {
	bus      EventBus.Bus
	sweeper  *AlertSweeper
	autoSend bool
}

func NewMatchNotifier(bus EventBus.Bus, sweeper *AlertSweeper, autoSend bool) (*MatchNotifier, error) {
	n := &MatchNotifier{
		bus:      bus,
		sweeper:  sweeper,
		autoSend: autoSend,
	}
	if err := bus.Subscribe(events.JobOpenedTopic, n.onJobOpened); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *MatchNotifier) Stop() {
	_ = n.bus.Unsubscribe(events.JobOpenedTopic, n.onJobOpened)
}

func (n *MatchNotifier) onJobOpened(event events.JobOpened) {
	created, err := n.sweeper.NotifyNewJobMatches(context.Background(), event.JobID, n.autoSend)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSweep).
			Errorf("failed to notify matches for job %v: %v", event.JobID, err)
		return
	}
	log.Infof("job %v opened (%s, %s): %d match alerts created",
		event.JobID, event.Specialty, event.State, created)
}
