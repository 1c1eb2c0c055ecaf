// Package memory provides slice-backed repositories that stand in for a
// remote backend: every operation simulates network latency, identities are
// assigned with a monotonic-max scheme, and reads and writes exchange copies
// so callers never hold a live reference into a store.
package memory
