package prov_test

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"path/filepath"
	"testing"
	"time"

	"github.com/prov-protocol/prov-go/internal/simulation"
	"github.com/prov-protocol/prov-go/pkg/button"
	"github.com/prov-protocol/prov-go/pkg/identity"
	provlog "github.com/prov-protocol/prov-go/pkg/log"
	"github.com/prov-protocol/prov-go/pkg/persistence"
	"github.com/prov-protocol/prov-go/pkg/provision"
)

// rig wires a full device out of real packages and simulated hardware:
// pin -> edge source -> debouncer -> controller, with simulated network
// and transport reporting back through the bridge.
type rig struct {
	ctrl      *provision.Controller
	network   *simulation.Network
	transport *simulation.Transport
	pin       *simulation.Pin
	source    *button.EdgeSource
	store     *persistence.CredentialStore
}

func newRig(t *testing.T, lifecycleLogger provlog.Logger) *rig {
	t.Helper()

	hw := []byte{0xaa, 0xbb, 0xcc, 0x4a, 0x7f, 0x02}
	id, err := identity.New(hw)
	if err != nil {
		t.Fatalf("Failed to derive identity: %v", err)
	}

	store := persistence.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	network := simulation.NewNetwork(netip.MustParseAddr("192.168.4.2"))
	transport := simulation.NewTransport()

	ctrl, err := provision.New(provision.Config{
		Identity:        id,
		PoP:             "abcd1234",
		Network:         network,
		Transport:       transport,
		Store:           store,
		LifecycleLogger: lifecycleLogger,
	})
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}

	bridge := provision.NewBridge(ctrl, nil)
	network.Bind(bridge)
	transport.Bind(bridge)

	source := button.NewEdgeSource()
	pin := simulation.NewPin(9, source)

	return &rig{
		ctrl:      ctrl,
		network:   network,
		transport: transport,
		pin:       pin,
		source:    source,
		store:     store,
	}
}

func (r *rig) start(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	debouncer := button.NewDebouncer(r.source, r.pin, button.DebouncerConfig{
		QuietWindow: 10 * time.Millisecond,
	})
	go debouncer.Run(ctx)
	r.ctrl.BindTriggers(ctx, debouncer.Triggers())

	if err := r.ctrl.Start(ctx); err != nil {
		t.Fatalf("Failed to start controller: %v", err)
	}
	return ctx
}

func waitForState(t *testing.T, ctrl *provision.Controller, want provision.State) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		if ctrl.State() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("State = %s, want %s", ctrl.State(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// TestE2E_Onboarding walks the happy path: an unprovisioned device boots
// into provisioning, receives credentials, and ends up connected with
// the credentials persisted.
func TestE2E_Onboarding(t *testing.T) {
	r := newRig(t, nil)
	r.start(t)

	waitForState(t, r.ctrl, provision.StateProvisioning)
	if !r.transport.Active() {
		t.Fatal("Transport not advertising during provisioning")
	}
	if r.transport.ServiceName() != "PROV_4A7F02" {
		t.Errorf("ServiceName = %q, want PROV_4A7F02", r.transport.ServiceName())
	}

	if err := r.transport.DeliverCredentials("homenet", "hunter22"); err != nil {
		t.Fatalf("Failed to deliver credentials: %v", err)
	}

	waitForState(t, r.ctrl, provision.StateConnected)
	if r.ctrl.Session() != nil {
		t.Error("Session still active after success")
	}

	creds, err := r.store.Load()
	if err != nil {
		t.Fatalf("Failed to load credentials: %v", err)
	}
	if creds == nil || creds.SSID != "homenet" {
		t.Fatalf("Persisted credentials = %+v, want homenet", creds)
	}

	// The station comes up after onboarding.
	deadline := time.After(2 * time.Second)
	for !r.network.Connected() {
		select {
		case <-deadline:
			t.Fatal("Station never connected")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// TestE2E_ButtonReset presses the (bouncy) hardware button on a
// provisioned device and verifies the device disconnects, wipes its
// credentials, and starts a fresh provisioning session.
func TestE2E_ButtonReset(t *testing.T) {
	r := newRig(t, nil)

	if err := r.store.Save(persistence.Credentials{SSID: "oldnet", Passphrase: "oldpass"}); err != nil {
		t.Fatalf("Failed to seed credentials: %v", err)
	}

	r.start(t)
	waitForState(t, r.ctrl, provision.StateConnected)

	r.pin.PressBouncy(4)
	defer r.pin.Release()

	waitForState(t, r.ctrl, provision.StateProvisioning)
	if r.network.Disconnects() != 1 {
		t.Errorf("Disconnects = %d, want 1", r.network.Disconnects())
	}
	if !r.transport.Active() {
		t.Error("Transport not advertising after reset")
	}

	creds, err := r.store.Load()
	if err != nil {
		t.Fatalf("Failed to load credentials: %v", err)
	}
	if creds != nil {
		t.Errorf("Credentials survived the reset: %+v", creds)
	}
}

// TestE2E_RepeatedOnboarding resets a connected device and onboards it
// onto a different network.
func TestE2E_RepeatedOnboarding(t *testing.T) {
	r := newRig(t, nil)
	r.start(t)

	waitForState(t, r.ctrl, provision.StateProvisioning)
	if err := r.transport.DeliverCredentials("first", "pass1"); err != nil {
		t.Fatalf("Failed to deliver credentials: %v", err)
	}
	waitForState(t, r.ctrl, provision.StateConnected)

	r.pin.Press()
	defer r.pin.Release()
	waitForState(t, r.ctrl, provision.StateProvisioning)

	if err := r.transport.DeliverCredentials("second", "pass2"); err != nil {
		t.Fatalf("Failed to deliver credentials: %v", err)
	}
	waitForState(t, r.ctrl, provision.StateConnected)

	creds, err := r.store.Load()
	if err != nil {
		t.Fatalf("Failed to load credentials: %v", err)
	}
	if creds == nil || creds.SSID != "second" {
		t.Fatalf("Persisted credentials = %+v, want second", creds)
	}
}

// TestE2E_LifecycleLog runs an onboarding with the binary lifecycle log
// attached and reads the recorded events back.
func TestE2E_LifecycleLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "device.plog")
	fileLogger, err := provlog.NewFileLogger(logPath)
	if err != nil {
		t.Fatalf("Failed to create lifecycle log: %v", err)
	}

	r := newRig(t, fileLogger)
	r.start(t)

	waitForState(t, r.ctrl, provision.StateProvisioning)
	if err := r.transport.DeliverCredentials("homenet", "hunter22"); err != nil {
		t.Fatalf("Failed to deliver credentials: %v", err)
	}
	waitForState(t, r.ctrl, provision.StateConnected)

	// Give the trailing protocol events time to land before closing.
	time.Sleep(50 * time.Millisecond)
	if err := fileLogger.Close(); err != nil {
		t.Fatalf("Failed to close lifecycle log: %v", err)
	}

	stateCategory := provlog.CategoryState
	reader, err := provlog.NewFilteredReader(logPath, provlog.Filter{Category: &stateCategory})
	if err != nil {
		t.Fatalf("Failed to open lifecycle log: %v", err)
	}
	defer reader.Close()

	var transitions []string
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Failed to read lifecycle log: %v", err)
		}
		if event.ServiceName != "PROV_4A7F02" {
			t.Errorf("ServiceName = %q, want PROV_4A7F02", event.ServiceName)
		}
		if event.StateChange == nil {
			t.Fatal("State event without state change payload")
		}
		transitions = append(transitions, event.StateChange.NewState)
	}

	want := []string{"PROVISIONING", "CONNECTED"}
	if len(transitions) != len(want) {
		t.Fatalf("Transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("Transition %d = %s, want %s", i, transitions[i], want[i])
		}
	}
}
