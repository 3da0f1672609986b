// Package history keeps the session history of benchmark runs: an in-memory,
// append-only log of runner.Record values grouped by the batch they arrived in.
//
// The log is owned by the caller (there is no package-level instance), is
// never pruned and is never persisted. It is safe for concurrent use.
package history
