// Package simulation provides in-memory stand-ins for the hardware and
// wireless collaborators: a GPIO pin that can be pressed and bounced, a
// network interface that acquires an address, and a provisioning
// transport that delivers credentials. Integration tests and the
// interactive console wire these to a real controller to exercise the
// full lifecycle without hardware.
package simulation
