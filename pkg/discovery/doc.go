// Package discovery implements mDNS/DNS-SD advertising for provisionable
// devices.
//
// While a provisioning session is active the device advertises the
// _prov._udp service so the companion onboarding app can find it on the
// local link. The instance name is the device's service name (PROV_XXYYZZ),
// which also appears in the onboarding payload; the app matches the two to
// pick the right device.
//
// TXT records carry the payload version ("ver") and the transport tag
// ("tt"). The proof-of-possession secret is never advertised; it reaches
// the app only through the rendered onboarding payload.
//
// Advertising stops when the session stops. Commissioned devices are not
// advertised at all.
package discovery
