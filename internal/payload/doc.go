// Package payload locates the filter binaries shipped with the tool. A
// payload source is a directory whose immediate subdirectories each hold one
// filter binary plus its filter.yaml manifest. Sources are resolved from the
// environment, the bundled release layout next to the executable, and the
// user config, in that order.
package payload
