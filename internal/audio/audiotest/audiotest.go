// Package audiotest provides a recording audio.Service for tests.
package audiotest

import "chosenoffset.com/candlewake/internal/audio"

// Event is one recorded call.
type Event struct {
	Op      string // "play", "stop", "stopall", "volume", "pan"
	Channel audio.Channel
	Sound   audio.SoundID
	Loop    bool
	Volume  float64
	Left    float64
	Right   float64
}

// Recorder records every request in order.
type Recorder struct {
	Events []Event
}

// Play records a play request.
func (r *Recorder) Play(ch audio.Channel, sound audio.SoundID, loop bool) {
	r.Events = append(r.Events, Event{Op: "play", Channel: ch, Sound: sound, Loop: loop})
}

// Stop records a stop request.
func (r *Recorder) Stop(ch audio.Channel) {
	r.Events = append(r.Events, Event{Op: "stop", Channel: ch})
}

// StopAll records a stop-all request.
func (r *Recorder) StopAll() {
	r.Events = append(r.Events, Event{Op: "stopall"})
}

// SetVolume records a volume change.
func (r *Recorder) SetVolume(ch audio.Channel, volume float64) {
	r.Events = append(r.Events, Event{Op: "volume", Channel: ch, Volume: volume})
}

// SetPan records a pan change.
func (r *Recorder) SetPan(ch audio.Channel, left, right float64) {
	r.Events = append(r.Events, Event{Op: "pan", Channel: ch, Left: left, Right: right})
}

// Plays returns how many times sound was started.
func (r *Recorder) Plays(sound audio.SoundID) int {
	n := 0
	for _, e := range r.Events {
		if e.Op == "play" && e.Sound == sound {
			n++
		}
	}
	return n
}

// Last returns the most recent event with the given op and whether one exists.
func (r *Recorder) Last(op string) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Op == op {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
