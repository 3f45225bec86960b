package provision

import (
	"time"

	"github.com/google/uuid"
)

// Session is an active provisioning session. At most one exists at any
// instant; it is created by startProvisioning and destroyed by
// stopProvisioning. Only the controller goroutine mutates it.
type Session struct {
	// ID is a random identifier for log correlation.
	ID string

	// ServiceName is the advertised service name.
	ServiceName string

	// PoP is the proof-of-possession secret guarding the session.
	PoP string

	// StartedAt is when the session started.
	StartedAt time.Time
}

// newSession creates a session record.
func newSession(serviceName, pop string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		ServiceName: serviceName,
		PoP:         pop,
		StartedAt:   time.Now(),
	}
}
