// Package logging builds the process logger: a console core on stderr
// tee'd with a per-invocation file core under the log directory.
//
// The file is named <prefix>_YYYY-MM-DD_HH-MM-SS.log and rotated by size.
// Secrets are never logged; callers log addresses, fingerprints and
// hashes only.
package logging
