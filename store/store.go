// Package store keeps werk's durable counters and timer registry in a BoltDB
// database
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/werk/internal/apperr"
	"github.com/ayoisaiah/werk/internal/models"
)

const (
	pomodoroBucket = "pomodoros"
	timerBucket    = "timers"
	countKey       = "count"
)

var errDBLocked = &apperr.Error{
	Message: "the werk database is locked by another process, try again",
	Code:    apperr.ExitSystemError,
}

// Client is a BoltDB database client. The database is opened for the
// duration of each operation only, so that concurrent werk processes wait
// on the file lock instead of failing.
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient returns a client for the database at dbPath and makes sure its
// buckets exist.
func NewClient(dbPath string) (*Client, error) {
	c := &Client{
		path:    dbPath,
		timeout: 1 * time.Second,
	}

	err := c.update(func(tx *bolt.Tx) error {
		for _, name := range []string{pomodoroBucket, timerBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// IncrementPomodoros atomically increments the completed session counter.
func (c *Client) IncrementPomodoros() (int, error) {
	var count int

	err := c.update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(pomodoroBucket))

		current, err := decodeCount(b.Get([]byte(countKey)))
		if err != nil {
			return err
		}

		count = current + 1

		return b.Put([]byte(countKey), []byte(strconv.Itoa(count)))
	})

	return count, err
}

// Pomodoros returns the completed session counter.
func (c *Client) Pomodoros() (int, error) {
	var count int

	err := c.view(func(tx *bolt.Tx) error {
		var err error

		count, err = decodeCount(
			tx.Bucket([]byte(pomodoroBucket)).Get([]byte(countKey)),
		)

		return err
	})

	return count, err
}

func (c *Client) SaveTimer(h *models.TimerHandle) error {
	value, err := json.Marshal(h)
	if err != nil {
		return err
	}

	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Put([]byte(h.SessionID), value)
	})
}

func (c *Client) GetTimer(sessionID string) (*models.TimerHandle, error) {
	var h *models.TimerHandle

	err := c.view(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(timerBucket)).Get([]byte(sessionID))
		if len(v) == 0 {
			return nil
		}

		h = &models.TimerHandle{}

		return json.Unmarshal(v, h)
	})

	return h, err
}

func (c *Client) DeleteTimer(sessionID string) error {
	return c.update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timerBucket)).Delete([]byte(sessionID))
	})
}

func (c *Client) update(fn func(tx *bolt.Tx) error) error {
	db, err := c.open()
	if err != nil {
		return err
	}

	defer db.Close()

	return db.Update(fn)
}

func (c *Client) view(fn func(tx *bolt.Tx) error) error {
	db, err := c.open()
	if err != nil {
		return err
	}

	defer db.Close()

	return db.View(fn)
}

// open creates or opens the database and locks it.
func (c *Client) open() (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		c.path,
		fileMode,
		&bolt.Options{Timeout: c.timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errDBLocked.Wrap(err)
		}

		return nil, err
	}

	return db, nil
}

func decodeCount(v []byte) (int, error) {
	if len(v) == 0 {
		return 0, nil
	}

	return strconv.Atoi(string(v))
}
