// Package state tracks what the tool has installed. Receipts are stored in
// ~/.cprasterctl/installed.yaml (CPRASTER_STATE overrides the directory) and
// record the name, version, and destination path of each installed filter.
// The package also provides the health checks behind the doctor command.
package state
