// Package log provides structured lifecycle logging for the provisioner.
//
// This package defines the Logger interface and Event types for capturing
// lifecycle events: controller state changes, button triggers, protocol
// events from the wireless stack and transport, and errors. It is separate
// from operational logging (slog) - lifecycle capture provides a complete
// machine-readable trace for field debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.LifecycleLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.LifecycleLogger, _ = log.NewFileLogger("/var/log/prov/device.plog")
//
//	// Both: use MultiLogger
//	cfg.LifecycleLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    log.NewFileLogger("/var/log/prov/device.plog"),
//	)
//
// # Event Categories
//
//   - State: controller state transitions (StateChangeEvent)
//   - Trigger: debounced button presses, including coalesced ones (TriggerEvent)
//   - Protocol: normalized stack/transport events, including drops (ProtocolEventData)
//   - Error: failures at any layer (ErrorEventData)
//
// # File Format
//
// Log files use CBOR encoding with .plog extension. The Reader type
// provides filtered streaming reads for tooling.
package log
