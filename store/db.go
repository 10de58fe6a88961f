package store

import "github.com/ayoisaiah/werk/internal/models"

// DB is the database storage interface.
type DB interface {
	// IncrementPomodoros adds one to the completed session counter and
	// returns the new value
	IncrementPomodoros() (int, error)
	// Pomodoros returns the number of completed sessions
	Pomodoros() (int, error)
	// SaveTimer records the background timer serving a session
	SaveTimer(h *models.TimerHandle) error
	// GetTimer returns the timer for a session or nil if none was saved
	GetTimer(sessionID string) (*models.TimerHandle, error)
	// DeleteTimer forgets the timer for a session
	DeleteTimer(sessionID string) error
}
