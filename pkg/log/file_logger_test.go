package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func writeEvents(t *testing.T, path string, events []Event) {
	t.Helper()

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	for _, ev := range events {
		logger.Log(ev)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.plog")

	events := []Event{
		{
			Timestamp: time.Now().UTC(),
			Category:  CategoryTrigger,
			Trigger:   &TriggerEvent{Pin: 32},
		},
		{
			Timestamp:   time.Now().UTC(),
			Category:    CategoryState,
			StateChange: &StateChangeEvent{NewState: "PROVISIONING"},
		},
	}
	writeEvents(t, path, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer reader.Close()

	var got []Event
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, ev)
	}

	if len(got) != len(events) {
		t.Fatalf("read %d events, want %d", len(got), len(events))
	}
	if got[0].Category != CategoryTrigger || got[0].Trigger == nil {
		t.Errorf("event 0 = %+v, want trigger", got[0])
	}
	if got[1].Category != CategoryState || got[1].StateChange == nil {
		t.Errorf("event 1 = %+v, want state change", got[1])
	}
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.plog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Log after close is silently ignored.
	logger.Log(Event{Category: CategoryError})
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.plog")

	events := []Event{
		{Timestamp: time.Now().UTC(), Category: CategoryTrigger, Trigger: &TriggerEvent{Pin: 32}},
		{Timestamp: time.Now().UTC(), Category: CategoryProtocol, Protocol: &ProtocolEventData{Type: "SESSION_STARTED"}},
		{Timestamp: time.Now().UTC(), Category: CategoryProtocol, Protocol: &ProtocolEventData{Type: "SESSION_STOPPED"}},
	}
	writeEvents(t, path, events)

	category := CategoryProtocol
	reader, err := NewFilteredReader(path, Filter{Category: &category})
	if err != nil {
		t.Fatalf("NewFilteredReader() error = %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if ev.Category != CategoryProtocol {
			t.Errorf("Category = %v, want CategoryProtocol", ev.Category)
		}
		count++
	}
	if count != 2 {
		t.Errorf("matched %d events, want 2", count)
	}
}
