package simulation

import (
	"net/netip"
	"sync"

	"github.com/prov-protocol/prov-go/pkg/provision"
)

// Network simulates the wireless station interface. Connect succeeds
// immediately and reports an acquired address back through the bridge,
// asynchronously, the way a real supplicant would.
type Network struct {
	// Addr is the address reported after a connect.
	Addr netip.Addr

	mu          sync.Mutex
	bridge      *provision.Bridge
	connected   bool
	connects    int
	disconnects int
}

// NewNetwork creates a simulated network reporting the given address.
func NewNetwork(addr netip.Addr) *Network {
	return &Network{Addr: addr}
}

// Bind attaches the bridge used to report address acquisition. Must be
// called before the controller starts.
func (n *Network) Bind(bridge *provision.Bridge) {
	n.mu.Lock()
	n.bridge = bridge
	n.mu.Unlock()
}

// Connect brings the station up. The got-address report runs on its own
// goroutine: Connect is called from the controller loop, and the report
// must go back through the inbox, not reenter the loop.
func (n *Network) Connect() error {
	n.mu.Lock()
	n.connected = true
	n.connects++
	bridge := n.bridge
	addr := n.Addr
	n.mu.Unlock()

	if bridge != nil {
		go bridge.StationGotAddress(addr)
	}
	return nil
}

// Disconnect tears the station down.
func (n *Network) Disconnect() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.connected = false
	n.disconnects++
	return nil
}

// Connected reports whether the station is up.
func (n *Network) Connected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connected
}

// Connects returns how many times Connect was called.
func (n *Network) Connects() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connects
}

// Disconnects returns how many times Disconnect was called.
func (n *Network) Disconnects() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.disconnects
}

// Compile-time interface satisfaction check.
var _ provision.Network = (*Network)(nil)
