package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode encodes lifecycle events deterministically so identical events
// produce identical bytes. Timestamps keep nanosecond precision; the
// debounce window and edge bursts are sub-millisecond phenomena.
var encMode cbor.EncMode

// decMode tolerates files written by older builds: duplicate keys and
// unknown fields are skipped rather than rejected, so a newer analyzer
// can still read an old device's log.
var decMode cbor.DecMode

func init() {
	var err error

	opts := cbor.CanonicalEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	opts.NilContainers = cbor.NilContainerAsNull
	if encMode, err = opts.EncMode(); err != nil {
		panic(fmt.Sprintf("lifecycle log encoder mode: %v", err))
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("lifecycle log decoder mode: %v", err))
	}
}

// EncodeEvent encodes a single event to its compact CBOR form.
func EncodeEvent(event Event) ([]byte, error) {
	return encMode.Marshal(event)
}

// DecodeEvent decodes a single CBOR-encoded event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := decMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns a streaming event encoder writing to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a streaming event decoder reading from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}
