// Package audio plays the warning chime before a scheduled action fires.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 880
	toneLength    = 250 * time.Millisecond
	toneGap       = 150 * time.Millisecond
)

// Player plays short alert sounds.
type Player interface {
	Chime()
}

// Chime plays a two-beep sine tone through the default speaker.
type Chime struct {
	mu     sync.Mutex
	ready  bool
	logger logrus.FieldLogger
}

// NewChime initialises the speaker. If no audio device is available the
// returned Chime is silent and the error is returned for logging.
func NewChime(logger logrus.FieldLogger) (*Chime, error) {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	chime := &Chime{logger: logger.WithField("component", "audio")}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return chime, fmt.Errorf("init speaker: %w", err)
	}
	chime.ready = true
	return chime, nil
}

// Chime plays the warning tone without blocking.
func (chime *Chime) Chime() {
	if chime == nil || !chime.ready {
		return
	}
	streamer, err := toneSequence()
	if err != nil {
		chime.logger.WithError(err).Warn("build chime")
		return
	}
	chime.mu.Lock()
	defer chime.mu.Unlock()
	speaker.Play(streamer)
}

func toneSequence() (beep.Streamer, error) {
	first, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return nil, err
	}
	second, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return nil, err
	}
	return beep.Seq(
		beep.Take(sampleRate.N(toneLength), first),
		beep.Silence(sampleRate.N(toneGap)),
		beep.Take(sampleRate.N(toneLength), second),
	), nil
}

// Silent is a Player that does nothing.
type Silent struct{}

// Chime does nothing.
func (Silent) Chime() {}
