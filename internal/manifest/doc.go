// Package manifest parses and validates filter payload manifests. Every
// payload directory carries a filter.yaml describing the filter binary next
// to it: its name, semantic version, and the MIME conversions it advertises
// to CUPS. Validation runs against an embedded JSON schema so malformed
// payloads are rejected with field-level issues instead of a decode panic.
package manifest
