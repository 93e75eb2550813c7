// Package coordinator runs the reconciliation control loop.
//
// Each iteration fetches a fresh registry snapshot, migrates any newly
// approved accounts, filters the snapshot down to migrated accounts, and then
// reconciles block streams and executors concurrently. A one second throttle
// runs alongside the passes so iterations never spin faster than once per
// second, while slow passes naturally stretch the iteration.
//
// Iteration failures are fatal: the loop stops and the caller decides whether
// to restart. Per-indexer failures inside a pass are not iteration failures;
// they are logged and counted, and the pass continues.
package coordinator
