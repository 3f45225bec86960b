// Package interactive provides the interactive command-line interface
// for the provisioning reference device.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/prov-protocol/prov-go/internal/simulation"
	"github.com/prov-protocol/prov-go/pkg/button"
	"github.com/prov-protocol/prov-go/pkg/identity"
	"github.com/prov-protocol/prov-go/pkg/provision"
)

// Console handles interactive mode for prov-device. It drives the
// simulated hardware so the full lifecycle can be exercised by hand:
// pressing the reset button, delivering credentials, and inspecting the
// controller state.
type Console struct {
	ctrl      *provision.Controller
	transport *simulation.Transport
	network   *simulation.Network
	pin       *simulation.Pin
	source    *button.EdgeSource
	rl        *readline.Instance
}

// New creates a new interactive console.
func New(ctrl *provision.Controller, transport *simulation.Transport, network *simulation.Network, pin *simulation.Pin, source *button.EdgeSource) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "device> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		ctrl:      ctrl,
		transport: transport,
		network:   network,
		pin:       pin,
		source:    source,
		rl:        rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "press", "p":
			c.cmdPress()

		case "bounce":
			c.cmdBounce()

		case "glitch":
			c.cmdGlitch()

		case "creds", "c":
			c.cmdCreds(args)

		case "reset":
			c.cmdReset()

		case "status", "s":
			c.cmdStatus()

		case "payload":
			c.cmdPayload()

		case "dropped":
			c.cmdDropped()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Provisioning Device Commands:
  Button:
    press              - Press and release the reset button (clean edge)
    bounce             - Press with contact bounce (burst of edges)
    glitch             - Electrical noise that is not a press

  Onboarding:
    creds <ssid> <passphrase> - Deliver credentials over the session
    reset              - Request a reset directly (bypass the button)

  Inspection:
    status             - Show controller and hardware status
    payload            - Show the onboarding payload
    dropped            - Show dropped raw edge count

  General:
    help               - Show this help
    quit               - Exit device`)
}

// holdTime is how long a simulated press stays closed. It must outlast
// the debounce quiet window or the resample sees a released pin and the
// press is discarded as bounce.
const holdTime = 3 * button.DefaultQuietWindow

// cmdPress simulates a clean press, hold, and release.
func (c *Console) cmdPress() {
	c.pin.Press()
	time.Sleep(holdTime)
	c.pin.Release()
	fmt.Fprintln(c.rl.Stdout(), "Button pressed")
}

// cmdBounce simulates a press with contact bounce.
func (c *Console) cmdBounce() {
	c.pin.PressBouncy(4)
	time.Sleep(holdTime)
	c.pin.Release()
	fmt.Fprintln(c.rl.Stdout(), "Button pressed (4 bounce edges)")
}

// cmdGlitch injects edges that settle released.
func (c *Console) cmdGlitch() {
	c.pin.Glitch(3)
	fmt.Fprintln(c.rl.Stdout(), "Glitch injected (should not trigger)")
}

// cmdCreds delivers credentials as the onboarding app would.
func (c *Console) cmdCreds(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: creds <ssid> <passphrase>")
		return
	}

	if err := c.transport.DeliverCredentials(args[0], args[1]); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Failed to deliver credentials: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Credentials delivered for %q\n", args[0])
}

// cmdReset requests a reset without going through the button.
func (c *Console) cmdReset() {
	c.ctrl.RequestReset()
	fmt.Fprintln(c.rl.Stdout(), "Reset requested")
}

// cmdStatus shows the controller and simulated hardware status.
func (c *Console) cmdStatus() {
	fmt.Fprintln(c.rl.Stdout(), "\nDevice Status")
	fmt.Fprintln(c.rl.Stdout(), "-------------------------------------------")
	fmt.Fprintf(c.rl.Stdout(), "  State:          %s\n", c.ctrl.State())

	if session := c.ctrl.Session(); session != nil {
		fmt.Fprintf(c.rl.Stdout(), "  Session:        %s\n", session.ID)
		fmt.Fprintf(c.rl.Stdout(), "  Service Name:   %s\n", session.ServiceName)
		fmt.Fprintf(c.rl.Stdout(), "  Started:        %s\n", session.StartedAt.Format("15:04:05"))
	} else {
		fmt.Fprintln(c.rl.Stdout(), "  Session:        none")
	}

	transportStatus := "idle"
	if c.transport.Active() {
		transportStatus = "advertising"
	}
	fmt.Fprintf(c.rl.Stdout(), "  Transport:      %s (starts: %d, stops: %d)\n",
		transportStatus, c.transport.Starts(), c.transport.Stops())

	networkStatus := "down"
	if c.network.Connected() {
		networkStatus = fmt.Sprintf("up (%s)", c.network.Addr)
	}
	fmt.Fprintf(c.rl.Stdout(), "  Station:        %s\n", networkStatus)
	fmt.Fprintf(c.rl.Stdout(), "  Button Pin:     %d\n", c.pin.Number)
	fmt.Fprintln(c.rl.Stdout())
}

// cmdPayload shows the onboarding payload for the active session.
func (c *Console) cmdPayload() {
	session := c.ctrl.Session()
	if session == nil {
		fmt.Fprintln(c.rl.Stdout(), "No provisioning session active")
		return
	}

	payload := identity.NewOnboardingPayload(
		identity.Identity{ServiceName: session.ServiceName},
		session.PoP,
		identity.TransportMDNS,
	)
	encoded, err := payload.Encode()
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Failed to encode payload: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "%s\n", encoded)
}

// cmdDropped shows how many raw edges were discarded at the source.
func (c *Console) cmdDropped() {
	fmt.Fprintf(c.rl.Stdout(), "Dropped edges: %d\n", c.source.Dropped())
}
