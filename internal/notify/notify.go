// Package notify delivers desktop notifications and alert sounds
package notify

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/werk/internal/apperr"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
}

// Notifier delivers a user-visible message.
type Notifier interface {
	Notify(title, body string) error
}

type discard struct{}

func (discard) Notify(_, _ string) error {
	return nil
}

// Discard drops every notification.
var Discard Notifier = discard{}

// Desktop sends notifications through the host's notification service and
// optionally plays a sound file afterwards.
type Desktop struct {
	Sound   string
	Enabled bool
}

// Notify shows a desktop notification. Sound failures are logged but not
// returned.
func (d *Desktop) Notify(title, body string) error {
	if !d.Enabled {
		return nil
	}

	err := beeep.Notify(title, body, "")
	if err != nil {
		return err
	}

	if d.Sound == "" {
		return nil
	}

	if serr := play(d.Sound); serr != nil {
		slog.Warn("unable to play notification sound",
			slog.String("sound", d.Sound),
			slog.Any("error", serr),
		)
	}

	return nil
}

// decode returns an audio stream for the sound file at path.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}

	_ = f.Close()

	return nil, beep.Format{}, errInvalidSoundFormat.Fmt(path)
}

// play blocks until the sound at path has finished playing.
func play(path string) error {
	stream, format, err := decode(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Second/time.Duration(bufferSize)),
	)
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
