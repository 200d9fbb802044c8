package cmd

import (
	"bytes"
	"testing"

	"github.com/jsphweid/chordwheel/logger"
	"github.com/stretchr/testify/assert"
)

func TestDescribeChordWarnsOnForeignBass(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(&buf, false)
	t.Cleanup(func() { logger.Init(false) })

	assert.Nil(t, describeChord("C/D", "", 0))
	assert.Contains(t, buf.String(), "not a chord tone")

	buf.Reset()
	assert.Nil(t, describeChord("C/E", "C", 0))
	assert.Empty(t, buf.String())
}

func TestDescribeChordErrors(t *testing.T) {
	assert.NotNil(t, describeChord("H7", "", 0))
	assert.NotNil(t, describeChord("Cxyz", "", 0))
}
