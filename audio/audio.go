// Package audio plays WAV sound effects through the system speaker.
package audio

import (
	"io"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

const (
	// SampleRate is the rate the speaker runs at; sounds are resampled to it.
	SampleRate = beep.SampleRate(44100)

	resampleQuality = 4
)

// Speaker owns the output device and the mixer every sound plays into.
type Speaker struct {
	mixer *beep.Mixer
	open  bool
}

// Open initializes the output device.
func Open() (*Speaker, error) {
	s := newSpeaker()
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	speaker.Play(s.mixer)
	s.open = true
	return s, nil
}

func newSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Close stops all sounds and releases the output device.
func (s *Speaker) Close() {
	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.open = false
}

// Load reads and decodes a WAV file.
func (s *Speaker) Load(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't load sound")
	}
	defer f.Close()

	snd, err := s.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode sound %s", path)
	}
	return snd, nil
}

// Decode reads a whole WAV stream into memory.
func (s *Speaker) Decode(r io.Reader) (*Sound, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	out := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(out)
	if format.SampleRate == SampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, SampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return &Sound{speaker: s, buf: buf}, nil
}

// Sound is a decoded clip. It can be played any number of times, also
// overlapping itself.
type Sound struct {
	speaker *Speaker
	buf     *beep.Buffer
	playing []*beep.Ctrl
}

// Duration returns the length of one playback.
func (s *Sound) Duration() time.Duration {
	return SampleRate.D(s.buf.Len())
}

// Play starts one playback.
func (s *Sound) Play() {
	s.start(s.buf.Streamer(0, s.buf.Len()))
}

// PlayLoop plays the sound until Stop is called.
func (s *Sound) PlayLoop() {
	s.start(beep.Loop(-1, s.buf.Streamer(0, s.buf.Len())))
}

func (s *Sound) start(st beep.Streamer) {
	ctrl := &beep.Ctrl{}
	// A finished playback clears its streamer so the mixer drops it.
	ctrl.Streamer = beep.Seq(st, beep.Callback(func() { ctrl.Streamer = nil }))
	speaker.Lock()
	s.prune()
	s.playing = append(s.playing, ctrl)
	s.speaker.mixer.Add(ctrl)
	speaker.Unlock()
}

// prune forgets finished playbacks. Callers hold the speaker lock.
func (s *Sound) prune() {
	live := s.playing[:0]
	for _, c := range s.playing {
		if c.Streamer != nil {
			live = append(live, c)
		}
	}
	s.playing = live
}

// Stop ends every playback of this sound.
func (s *Sound) Stop() {
	speaker.Lock()
	for _, c := range s.playing {
		c.Streamer = nil
	}
	s.playing = s.playing[:0]
	speaker.Unlock()
}
