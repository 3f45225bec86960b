// Package persistence stores received network credentials on disk.
//
// The CredentialStore persists the credentials delivered during a
// provisioning session to a JSON file. At boot the controller asks the
// store exactly once whether credentials exist; a factory reset clears
// them before provisioning restarts.
//
// The on-disk format is versioned JSON. This is the reference store; a
// production device would back the same interface with its platform's
// secure storage.
package persistence
