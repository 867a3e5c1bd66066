package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// channelState is the streamer chain of one logical channel:
// buffer → (loop) → stereo gain → volume → ctrl → mixer.
type channelState struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	gain   *stereoGain

	level       float64
	left, right float64
}

// Speaker is the beep-backed Service.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	bank        map[SoundID]*beep.Buffer
	channels    [numChannels]channelState
	initialized bool
}

// NewSpeaker creates a speaker with every channel at full volume and
// centred. Nothing plays until Initialize succeeds.
func NewSpeaker() *Speaker {
	s := &Speaker{
		mixer: &beep.Mixer{},
	}
	for i := range s.channels {
		s.channels[i] = channelState{level: 1, left: 1, right: 1}
	}
	return s
}

// Initialize opens the output device and synthesizes the sound bank.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	s.bank = Synthesize(sampleRate)
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close stops all sounds and detaches the mixer.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	for i := range s.channels {
		s.stopLocked(Channel(i))
	}
	s.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	s.initialized = false
}

// Play starts sound on ch, replacing what the channel was playing.
func (s *Speaker) Play(ch Channel, sound SoundID, loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || !validChannel(ch) {
		return
	}
	buf, ok := s.bank[sound]
	if !ok {
		return
	}

	var src beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		src = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}

	speaker.Lock()
	defer speaker.Unlock()

	s.stopLocked(ch)
	state := &s.channels[ch]
	state.gain = &stereoGain{Streamer: src, Left: state.left, Right: state.right}
	state.volume = newVolume(state.gain, state.level)
	state.ctrl = &beep.Ctrl{Streamer: state.volume}
	s.mixer.Add(state.ctrl)
}

// Stop silences ch.
func (s *Speaker) Stop(ch Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || !validChannel(ch) {
		return
	}
	speaker.Lock()
	s.stopLocked(ch)
	speaker.Unlock()
}

// StopAll silences every channel.
func (s *Speaker) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	for i := range s.channels {
		s.stopLocked(Channel(i))
	}
	speaker.Unlock()
}

// SetVolume sets the level of ch. It applies to the current sound and to
// every later one.
func (s *Speaker) SetVolume(ch Channel, volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validChannel(ch) {
		return
	}
	state := &s.channels[ch]
	state.level = clamp01(volume)
	if !s.initialized || state.volume == nil {
		return
	}

	speaker.Lock()
	applyLevel(state.volume, state.level)
	speaker.Unlock()
}

// SetPan sets the per-side levels of ch.
func (s *Speaker) SetPan(ch Channel, left, right float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validChannel(ch) {
		return
	}
	state := &s.channels[ch]
	state.left, state.right = clamp01(left), clamp01(right)
	if !s.initialized || state.gain == nil {
		return
	}

	speaker.Lock()
	state.gain.Left, state.gain.Right = state.left, state.right
	speaker.Unlock()
}

// stopLocked detaches the channel's streamer; the mixer drops it on its
// next pass. The caller holds the speaker lock.
func (s *Speaker) stopLocked(ch Channel) {
	state := &s.channels[ch]
	if state.ctrl != nil {
		state.ctrl.Streamer = nil
	}
	state.ctrl, state.volume, state.gain = nil, nil, nil
}

func validChannel(ch Channel) bool {
	return ch >= 0 && ch < numChannels
}

// newVolume wraps s in a volume effect at the given linear level.
// math.Log2(0) is -Inf, so zero maps to the silent flag.
func newVolume(s beep.Streamer, level float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	applyLevel(v, level)
	return v
}

func applyLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(level), false
}

// stereoGain scales the left and right samples independently.
type stereoGain struct {
	Streamer    beep.Streamer
	Left, Right float64
}

func (g *stereoGain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.Left
		samples[i][1] *= g.Right
	}
	return n, ok
}

func (g *stereoGain) Err() error {
	return g.Streamer.Err()
}
