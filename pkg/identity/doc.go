// Package identity derives the device's provisioning identity.
//
// The service name is a short, human-presentable string derived from the
// last bytes of a hardware-stable address (typically the station MAC).
// It is the mDNS instance name while the device is provisionable and it
// appears inside the onboarding payload, so it must be identical in both
// places and stable across reboots and reprovisioning cycles.
//
// # Service Name
//
// Format: PROV_XXYYZZ, where XXYYZZ are the last three bytes of the
// hardware address in upper-case hex. Example: PROV_4A7F02.
//
// # Onboarding Payload
//
// The payload is the compact JSON record shown to the operator (usually
// rendered as a QR code) and scanned by the companion onboarding app:
//
//	{"ver":"v1","name":"PROV_4A7F02","pop":"abcd1234","transport":"mdns"}
//
// The field names are a compatibility contract; changing them breaks
// every deployed companion app.
//
// # Proof of Possession
//
// The PoP secret is supplied by deployment configuration. For fleets
// without per-device configuration, DerivePoP produces a per-device
// secret from a factory secret via HKDF-SHA256, and GeneratePoP produces
// a random one for ephemeral use.
package identity
