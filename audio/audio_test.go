package audio

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pcmWAV builds a 16-bit PCM WAV file with a constant sample value.
func pcmWAV(rate, channels, frames int) []byte {
	data := make([]byte, frames*channels*2)
	for i := 0; i < len(data); i += 2 {
		binary.LittleEndian.PutUint16(data[i:], 1000)
	}

	var b bytes.Buffer
	w := func(v any) { _ = binary.Write(&b, binary.LittleEndian, v) }
	b.WriteString("RIFF")
	w(uint32(36 + len(data)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(channels))
	w(uint32(rate))
	w(uint32(rate * channels * 2))
	w(uint16(channels * 2))
	w(uint16(16))
	b.WriteString("data")
	w(uint32(len(data)))
	b.Write(data)
	return b.Bytes()
}

func TestDecode(t *testing.T) {
	s := newSpeaker()
	snd, err := s.Decode(bytes.NewReader(pcmWAV(int(SampleRate), 2, 4410)))
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, snd.Duration())
}

func TestDecodeResamples(t *testing.T) {
	s := newSpeaker()
	snd, err := s.Decode(bytes.NewReader(pcmWAV(22050, 1, 2205)))
	require.NoError(t, err)
	assert.InDelta(t, float64(100*time.Millisecond), float64(snd.Duration()), float64(2*time.Millisecond))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := newSpeaker().Decode(strings.NewReader("not a wav file"))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := newSpeaker().Load(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't load sound")
}

func TestPlayAndStop(t *testing.T) {
	s := newSpeaker()
	snd, err := s.Decode(bytes.NewReader(pcmWAV(int(SampleRate), 2, 441)))
	require.NoError(t, err)

	snd.Play()
	snd.PlayLoop()
	assert.Equal(t, 2, s.mixer.Len())
	assert.Len(t, snd.playing, 2)

	buf := make([][2]float64, 64)
	s.mixer.Stream(buf)
	assert.NotZero(t, buf[0][0], "sound reaches the mixer")

	snd.Stop()
	assert.Empty(t, snd.playing)
	s.mixer.Stream(buf)
	assert.Equal(t, 0, s.mixer.Len(), "stopped playbacks are dropped")
}

func TestFinishedPlaybackIsPruned(t *testing.T) {
	s := newSpeaker()
	snd, err := s.Decode(bytes.NewReader(pcmWAV(int(SampleRate), 2, 32)))
	require.NoError(t, err)

	snd.Play()
	buf := make([][2]float64, 128)
	s.mixer.Stream(buf)
	s.mixer.Stream(buf)

	snd.Play()
	assert.Len(t, snd.playing, 1)
}
