// Command prov-device is a reference network-onboarding device.
//
// The device derives its identity from a hardware address, persists
// received credentials, and runs the full provisioning lifecycle: boot
// decision, mDNS advertising, and button-driven reset. Hardware is
// simulated, so the lifecycle can be exercised end to end from the
// interactive console.
//
// Usage:
//
//	prov-device [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-mac string          Hardware address for identity derivation
//	-pin int             Reset button GPIO pin (default 9)
//	-quiet-window int    Debounce quiet window in milliseconds (default 50)
//	-port int            Provisioning service port (default 8443)
//	-pop string          Proof-of-possession secret (derived or generated if empty)
//	-state-dir string    Directory for persisted credentials (default ".")
//	-lifecycle-log string  Path for the binary lifecycle log
//	-log-level string    Log level: debug, info, warn, error (default "info")
//	-advertise           Advertise the provisioning service over mDNS
//	-interactive         Enable interactive command mode
//	-reset               Clear persisted credentials before starting
//
// Examples:
//
//	# Start with a fixed identity and interactive console
//	prov-device -mac aa:bb:cc:4a:7f:02 -interactive
//
//	# Advertise over real mDNS with persistent state
//	prov-device -advertise -state-dir /var/lib/prov-device
//
//	# Factory-reset the persisted credentials
//	prov-device -state-dir /var/lib/prov-device -reset
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/netip"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prov-protocol/prov-go/cmd/prov-device/interactive"
	"github.com/prov-protocol/prov-go/internal/simulation"
	"github.com/prov-protocol/prov-go/pkg/button"
	"github.com/prov-protocol/prov-go/pkg/discovery"
	"github.com/prov-protocol/prov-go/pkg/identity"
	provlog "github.com/prov-protocol/prov-go/pkg/log"
	"github.com/prov-protocol/prov-go/pkg/persistence"
	"github.com/prov-protocol/prov-go/pkg/provision"
)

var flags struct {
	configFile    string
	mac           string
	pin           int
	quietWindowMS int
	port          int
	pop           string
	factorySecret string
	stateDir      string
	lifecycleLog  string
	logLevel      string
	advertise     bool
	iface         string
	interactive   bool
	reset         bool
}

func init() {
	flag.StringVar(&flags.configFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&flags.mac, "mac", "", "Hardware address for identity derivation")
	flag.IntVar(&flags.pin, "pin", 9, "Reset button GPIO pin")
	flag.IntVar(&flags.quietWindowMS, "quiet-window", 50, "Debounce quiet window in milliseconds")
	flag.IntVar(&flags.port, "port", 8443, "Provisioning service port")
	flag.StringVar(&flags.pop, "pop", "", "Proof-of-possession secret (derived or generated if empty)")
	flag.StringVar(&flags.factorySecret, "factory-secret", "", "Factory secret for PoP derivation")
	flag.StringVar(&flags.stateDir, "state-dir", ".", "Directory for persisted credentials")
	flag.StringVar(&flags.lifecycleLog, "lifecycle-log", "", "Path for the binary lifecycle log")
	flag.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&flags.advertise, "advertise", false, "Advertise the provisioning service over mDNS")
	flag.StringVar(&flags.iface, "interface", "", "Network interface for mDNS advertising")
	flag.BoolVar(&flags.interactive, "interactive", false, "Enable interactive command mode")
	flag.BoolVar(&flags.reset, "reset", false, "Clear persisted credentials before starting")
}

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupLogging(cfg.LogLevel)
	logger := newSlogLogger(cfg.LogLevel)

	log.Println("Provisioning Reference Device")
	log.Println("=============================")

	// Identity
	hw, err := hardwareAddr(cfg.HardwareAddr)
	if err != nil {
		log.Fatalf("Failed to resolve hardware address: %v", err)
	}
	id, err := identity.New(hw)
	if err != nil {
		log.Fatalf("Failed to derive identity: %v", err)
	}
	log.Printf("Service name: %s", id.ServiceName)

	pop, err := resolvePoP(cfg, hw)
	if err != nil {
		log.Fatalf("Failed to resolve proof of possession: %v", err)
	}

	// Persistence
	store := persistence.NewCredentialStore(filepath.Join(cfg.StateDir, "credentials.json"))
	if flags.reset {
		log.Println("Clearing persisted credentials...")
		if err := store.Clear(); err != nil {
			log.Fatalf("Failed to clear credentials: %v", err)
		}
	}

	// Lifecycle log
	lifecycleLogger, closeLifecycle, err := buildLifecycleLogger(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open lifecycle log: %v", err)
	}
	defer closeLifecycle()

	// Simulated hardware and transport
	addr, err := netip.ParseAddr(cfg.Address)
	if err != nil {
		log.Fatalf("Invalid station address: %v", err)
	}
	network := simulation.NewNetwork(addr)
	transport := simulation.NewTransport()

	if cfg.Advertise {
		advertiser, err := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{
			Interface: cfg.Interface,
			TTL:       discovery.DefaultAdvertiserConfig().TTL,
		})
		if err != nil {
			log.Fatalf("Failed to create mDNS advertiser: %v", err)
		}
		transport.Chain(provision.NewAdvertisingTransport(advertiser, identity.TransportMDNS, cfg.Port))
		log.Printf("mDNS advertising enabled (%s port %d)", discovery.ServiceTypeProvisionable, cfg.Port)
	}

	// Controller
	ctrl, err := provision.New(provision.Config{
		Identity:        id,
		PoP:             pop,
		Network:         network,
		Transport:       transport,
		Store:           store,
		Renderer:        consoleRenderer{},
		Logger:          logger,
		LifecycleLogger: lifecycleLogger,
	})
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}

	bridge := provision.NewBridge(ctrl, logger)
	network.Bind(bridge)
	transport.Bind(bridge)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Button chain: simulated pin -> edge source -> debouncer -> controller
	source := button.NewEdgeSource()
	pin := simulation.NewPin(cfg.Pin, source)
	debouncer := button.NewDebouncer(source, pin, button.DebouncerConfig{
		QuietWindow: cfg.QuietWindow(),
		Logger:      logger,
	})
	go debouncer.Run(ctx)
	ctrl.BindTriggers(ctx, debouncer.Triggers())

	if err := ctrl.Start(ctx); err != nil {
		log.Fatalf("Failed to start controller: %v", err)
	}
	log.Printf("Controller started (state: %s)", ctrl.State())

	if flags.interactive {
		ic, err := interactive.New(ctrl, transport, network, pin, source)
		if err != nil {
			log.Fatalf("Failed to create interactive console: %v", err)
		}
		// Redirect log output through readline to avoid interfering with input
		log.SetOutput(ic.Stdout())
		go ic.Run(ctx, cancel)
	}

	// Wait for shutdown signal or context cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	cancel()
	log.Println("Goodbye!")
}

// buildConfig assembles the configuration: defaults, then the YAML file,
// then explicitly set flags.
func buildConfig() (Config, error) {
	cfg := DefaultConfig()

	if flags.configFile != "" {
		loaded, err := LoadConfig(flags.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mac":
			cfg.HardwareAddr = flags.mac
		case "pin":
			cfg.Pin = flags.pin
		case "quiet-window":
			cfg.QuietWindowMS = flags.quietWindowMS
		case "port":
			cfg.Port = uint16(flags.port)
		case "pop":
			cfg.PoP = flags.pop
		case "factory-secret":
			cfg.FactorySecret = flags.factorySecret
		case "state-dir":
			cfg.StateDir = flags.stateDir
		case "lifecycle-log":
			cfg.LifecycleLog = flags.lifecycleLog
		case "log-level":
			cfg.LogLevel = flags.logLevel
		case "advertise":
			cfg.Advertise = flags.advertise
		case "interface":
			cfg.Interface = flags.iface
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

func newSlogLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// hardwareAddr resolves the identity-bearing hardware address: the
// configured MAC, or the first hardware interface that has one.
func hardwareAddr(configured string) ([]byte, error) {
	if configured != "" {
		hw, err := net.ParseMAC(configured)
		if err != nil {
			return nil, err
		}
		return hw, nil
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) < identity.ServiceNameHexBytes {
			continue
		}
		return iface.HardwareAddr, nil
	}
	return nil, fmt.Errorf("no interface with a hardware address; use -mac")
}

// resolvePoP picks the proof-of-possession secret: configured value,
// derivation from the factory secret, or a fresh random one.
func resolvePoP(cfg Config, hw []byte) (string, error) {
	if cfg.PoP != "" {
		return cfg.PoP, nil
	}
	if cfg.FactorySecret != "" {
		return identity.DerivePoP([]byte(cfg.FactorySecret), hw)
	}
	return identity.GeneratePoP()
}

// buildLifecycleLogger assembles the lifecycle logger: always the slog
// adapter, plus the binary file log when configured.
func buildLifecycleLogger(cfg Config, logger *slog.Logger) (provlog.Logger, func(), error) {
	adapter := provlog.NewSlogAdapter(logger)
	if cfg.LifecycleLog == "" {
		return adapter, func() {}, nil
	}

	fileLogger, err := provlog.NewFileLogger(cfg.LifecycleLog)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := fileLogger.Close(); err != nil {
			log.Printf("Error closing lifecycle log: %v", err)
		}
	}
	return provlog.NewMultiLogger(adapter, fileLogger), closer, nil
}

// onboardingBaseURL renders the payload as a scannable page for phones
// without the companion app installed.
const onboardingBaseURL = "https://prov-protocol.github.io/onboard/"

// consoleRenderer prints the onboarding payload for the user to scan or
// type into the onboarding app.
type consoleRenderer struct{}

func (consoleRenderer) Render(payload identity.OnboardingPayload) error {
	encoded, err := payload.Encode()
	if err != nil {
		return err
	}

	log.Println("")
	log.Println("============================================")
	log.Println("          ONBOARDING INFORMATION            ")
	log.Println("============================================")
	log.Printf("Payload: %s", encoded)
	log.Println("")
	log.Printf("  Service Name: %s", payload.Name)
	log.Printf("  PoP:          %s", payload.PoP)
	log.Printf("  Transport:    %s", payload.Transport)
	log.Println("")
	log.Printf("  Link: %s?data=%s", onboardingBaseURL, url.QueryEscape(encoded))
	log.Println("============================================")
	log.Println("")
	return nil
}
