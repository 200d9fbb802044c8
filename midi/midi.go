// Package midi reads and writes standard MIDI files for chord timelines.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrInvalidFile = errors.New("invalid midi file")

// Read loads an SMF from disk.
func Read(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return ReadFrom(bytes.NewReader(dat))
}

func ReadFrom(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on truncated input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, fmt.Errorf("%w: %v", ErrInvalidFile, rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err.Error())
	}
	return res, nil
}
