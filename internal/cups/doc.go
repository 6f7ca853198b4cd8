// Package cups resolves where the host's CUPS installation loads filter
// binaries from. Resolution branches on the kernel name the way the historical
// installer script did: Linux and unknown kernels use /usr/lib/cups/filter,
// Darwin uses /usr/libexec/cups/filter. Explicit overrides (environment,
// config, a cups-config probe) take precedence over the kernel default.
package cups
