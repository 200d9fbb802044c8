package constants

// SMF resolution used for exported files.
const TicksPerQuarter = 960

const DefaultOctave = 4
const DefaultTempo = 120
const DefaultBeatsPerChord = 4
const DefaultVelocity uint8 = 96

const DefaultSampleRate = 44100

// const DefaultSampleRate = 22050

const DefaultOutDir = "./out"
const DefaultPort = 8080

// Milliseconds of quiet before the held notes on a live input are identified.
const ListenDebounceMs = 60

// Export limits. A song longer than MaxSongBeats is refused before any
// timeline is allocated.
const MaxBeatsPerChord = 64
const MaxSongBeats = 4096
const MaxTempo = 960
