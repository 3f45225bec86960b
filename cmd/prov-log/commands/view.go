// Package commands implements the prov-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/prov-protocol/prov-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	ServiceName string
	SessionID   string
	Category    *log.Category
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenSessionID(event.SessionID)
	if session == "" {
		session = "-"
	}

	typeLabel := "Unknown"
	switch {
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Trigger != nil:
		typeLabel = "Trigger"
	case event.Protocol != nil:
		typeLabel = event.Protocol.Type
	case event.Error != nil:
		typeLabel = "Error"
	}

	fmt.Fprintf(w, "%s [session:%s] %-8s %s\n", ts, session, event.Category.String(), typeLabel)

	switch {
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Trigger != nil:
		formatTriggerDetails(w, event.Trigger)
	case event.Protocol != nil:
		formatProtocolDetails(w, event.Protocol)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatTriggerDetails writes trigger details.
func formatTriggerDetails(w io.Writer, trigger *log.TriggerEvent) {
	if trigger.Pin != 0 {
		fmt.Fprintf(w, "  Pin: %d\n", trigger.Pin)
	}
	if trigger.Coalesced {
		fmt.Fprintln(w, "  Coalesced: reset already pending")
	}
}

// formatProtocolDetails writes protocol event details.
func formatProtocolDetails(w io.Writer, p *log.ProtocolEventData) {
	if p.Dropped {
		fmt.Fprintf(w, "  Dropped: %s\n", p.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "trigger":
		return log.CategoryTrigger, nil
	case "protocol":
		return log.CategoryProtocol, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, trigger, protocol, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		// Apply filter
		if filter.ServiceName != "" && event.ServiceName != filter.ServiceName {
			continue
		}
		if filter.SessionID != "" && !strings.HasPrefix(event.SessionID, filter.SessionID) {
			continue
		}
		if filter.Category != nil && event.Category != *filter.Category {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
