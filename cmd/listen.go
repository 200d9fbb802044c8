package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/util"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenKey string

func init() {
	listenCmd.Flags().StringVarP(&listenKey, "key", "k", "C", "major key for numerals")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long:  `Listens on MIDI_IN_PORT and prints the chord held on the keyboard whenever it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(listenKey)
	},
}

// heldNotes is written from the driver's callback and read by the debounced
// printer.
type heldNotes struct {
	mu    sync.Mutex
	notes map[uint8]bool
}

func (h *heldNotes) set(key uint8, on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if on {
		h.notes[key] = true
	} else {
		delete(h.notes, key)
	}
}

func (h *heldNotes) sorted() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.SortedKeys(h.notes)
}

func listen(key string) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(cfg.MIDIInPort)
	if err != nil {
		return fmt.Errorf("no midi input on port %d: %w", cfg.MIDIInPort, err)
	}

	held := &heldNotes{notes: make(map[uint8]bool)}
	debounced := debounce.New(constants.ListenDebounceMs * time.Millisecond)
	last := ""
	report := func() {
		notes := held.sorted()
		label := ""
		if got, ok := identify(notes, key); ok {
			label = fmt.Sprintf("%-8s %-5s %s", got.Symbol, got.Numeral, wheelLabel(got))
		} else if len(notes) > 0 {
			label = fmt.Sprintf("%v", notes)
		}
		if label != "" && label != last {
			fmt.Println(label)
		}
		last = label
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, note, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &note, &vel):
			held.set(note, true)
		case msg.GetNoteEnd(&ch, &note):
			held.set(note, false)
		default:
			return
		}
		debounced(report)
	})
	if err != nil {
		return fmt.Errorf("listening on %s: %w", in.String(), err)
	}
	defer stop()

	logger.Info("listening for chords", logger.Fields{"port": in.String(), "key": key})
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
	return nil
}
