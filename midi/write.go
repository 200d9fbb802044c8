package midi

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Largest delta a variable-length quantity can carry.
const maxDelta = 0x0FFFFFFF

var (
	ErrTickRange    = errors.New("event outside the representable tick range")
	ErrInvalidTempo = errors.New("tempo must be positive")
)

// ticks converts a beat position, refusing anything a single delta could not
// reach from the start of the track.
func ticks(beat int) (uint32, error) {
	if beat < 0 || beat > maxDelta/constants.TicksPerQuarter {
		return 0, fmt.Errorf("%w: beat %d", ErrTickRange, beat)
	}
	return uint32(beat * constants.TicksPerQuarter), nil
}

type timedMessage struct {
	tick  uint32
	isOff bool
	key   uint8
	vel   uint8
}

// Build lays note events out as a type 1 SMF: a tempo track followed by one
// track holding every chord on channel 0.
func Build(events []model.NoteEvent, tempo int) (*smf.SMF, error) {
	if tempo <= 0 {
		return nil, fmt.Errorf("tempo %d: %w", tempo, ErrInvalidTempo)
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaMeter(4, 4))
	meta.Add(0, smf.MetaTempo(float64(tempo)))
	meta.Close(0)
	if err := s.Add(meta); err != nil {
		return nil, fmt.Errorf("adding tempo track: %w", err)
	}

	var msgs []timedMessage
	for _, evt := range events {
		start, err := ticks(evt.StartBeat)
		if err != nil {
			return nil, err
		}
		if evt.Duration < 0 {
			return nil, fmt.Errorf("%w: negative duration at beat %d", ErrTickRange, evt.StartBeat)
		}
		end, err := ticks(evt.StartBeat + evt.Duration)
		if err != nil {
			return nil, err
		}
		for _, key := range evt.Notes {
			msgs = append(msgs,
				timedMessage{tick: start, key: key, vel: evt.Velocity},
				timedMessage{tick: end, isOff: true, key: key},
			)
		}
	}

	// note offs first so a repeated note is released before it sounds again
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	var last uint32
	for _, m := range msgs {
		delta := m.tick - last
		if m.isOff {
			track.Add(delta, gomidi.NoteOff(0, m.key))
		} else {
			track.Add(delta, gomidi.NoteOn(0, m.key, m.vel))
		}
		last = m.tick
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("adding chord track: %w", err)
	}
	return s, nil
}

func Write(w io.Writer, events []model.NoteEvent, tempo int) error {
	s, err := Build(events, tempo)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}
