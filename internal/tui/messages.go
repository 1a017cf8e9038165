package tui

import (
	"time"

	"github.com/MKhiriev/ts3-users-bot/models"
)

type treeLoadedMsg struct {
	channels []models.Channel
	err      error
	at       time.Time
}

// refreshTickMsg fires the auto refresh. Ticks of an older generation are
// dropped so a manual refresh does not double the schedule.
type refreshTickMsg struct {
	generation int
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
