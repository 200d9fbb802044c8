package midi

import (
	"sort"

	"github.com/jsphweid/chordwheel/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Sounding is the set of keys held from Offset (microseconds) until the next
// change.
type Sounding struct {
	Offset int64
	Notes  []uint8
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      uint8
}

// ExtractChords merges every track and returns the non-empty note sets in
// time order.
func ExtractChords(s *smf.SMF) []Sounding {
	var reduced []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// a zero-velocity note on is a note off
				reduced = append(reduced, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: velocity == 0, note: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reduced = append(reduced, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: true, note: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reduced, func(i, j int) bool {
		if reduced[i].offset != reduced[j].offset {
			return reduced[i].offset < reduced[j].offset
		}
		return reduced[i].isNoteOff && !reduced[j].isNoteOff
	})

	var res []Sounding
	pressed := make(map[uint8]bool)
	for i, evt := range reduced {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		// only the last event at an offset settles the set
		if i+1 < len(reduced) && reduced[i+1].offset == evt.offset {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		res = append(res, Sounding{Offset: evt.offset, Notes: util.SortedKeys(pressed)})
	}
	return res
}
