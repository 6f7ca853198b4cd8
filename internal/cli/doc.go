// Package cli wires up the cprasterctl command tree. Commands print
// user-facing output to the command's writer and return wrapped errors for
// cobra to surface; process exit codes are handled in main.
package cli
