package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestSpeakerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSpeakerGracefulDegradation(t *testing.T) {
	s := NewSpeaker()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Speaker operations panicked without initialization: %v", r)
		}
	}()

	s.Play(ChannelAmbient, SoundAmbient, true)
	s.SetVolume(ChannelPursuit, 0.5)
	s.SetPan(ChannelPursuit, 0.2, 0.8)
	s.Stop(ChannelMusic)
	s.StopAll()
	s.Close()
}

// TestSpeakerRemembersLevelsBeforePlayback verifies levels set early apply to later sounds
func TestSpeakerRemembersLevelsBeforePlayback(t *testing.T) {
	s := NewSpeaker()

	s.SetVolume(ChannelAmbient, 0.25)
	s.SetPan(ChannelPursuit, 1.5, -1)

	if got := s.channels[ChannelAmbient].level; got != 0.25 {
		t.Errorf("Expected ambient level 0.25, got %v", got)
	}
	state := s.channels[ChannelPursuit]
	if state.left != 1 || state.right != 0 {
		t.Errorf("Expected pan clamped to (1, 0), got (%v, %v)", state.left, state.right)
	}

	// Out-of-range channels are ignored.
	s.SetVolume(Channel(99), 0.1)
	s.SetPan(Channel(-1), 0.1, 0.1)
}

// TestSpeakerInitialization verifies the speaker can be initialized and closed
func TestSpeakerInitialization(t *testing.T) {
	s := NewSpeaker()

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := s.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected in test environment): %v", err)
		return
	}
	defer s.Close()

	if err := s.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}

	s.Play(ChannelEffect, SoundMatch, false)
	s.Play(ChannelAmbient, SoundAmbient, true)
	s.StopAll()
}

func TestSynthesizeProducesEverySound(t *testing.T) {
	sr := beep.SampleRate(8000)
	bank := Synthesize(sr)

	for id := SoundID(0); id < numSounds; id++ {
		buf, ok := bank[id]
		if !ok {
			t.Errorf("Sound %d missing from bank", id)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("Sound %d is empty", id)
		}
	}

	if got, want := bank[SoundMatch].Len(), sr.N(600 * time.Millisecond); got != want {
		t.Errorf("Expected match sound of %d samples, got %d", want, got)
	}
}

func TestStereoGainScalesChannels(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0], samples[i][1] = 1, 1
		}
		return len(samples), true
	})
	g := &stereoGain{Streamer: src, Left: 0.25, Right: 0.75}

	samples := make([][2]float64, 4)
	n, ok := g.Stream(samples)
	if n != 4 || !ok {
		t.Fatalf("Stream returned (%d, %v)", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0.25 || s[1] != 0.75 {
			t.Errorf("Sample %d = %v, want [0.25 0.75]", i, s)
		}
	}
}

func TestApplyLevelSilencesZero(t *testing.T) {
	v := newVolume(beep.Silence(10), 0)
	if !v.Silent {
		t.Error("Expected zero level to be silent")
	}
	applyLevel(v, 1)
	if v.Silent || v.Volume != 0 {
		t.Errorf("Expected unity level, got volume=%v silent=%v", v.Volume, v.Silent)
	}
	applyLevel(v, 0.5)
	if v.Volume != -1 {
		t.Errorf("Expected half level to be -1 in base 2, got %v", v.Volume)
	}
}
