// Package platform provides cross-platform filesystem primitives: permission
// management, executable-bit probing, and durable-write (fsync) helpers. On
// Unix systems it calls chmod and fsync directly. On Windows permission
// operations are no-ops because Windows does not use Unix permission bits.
package platform
