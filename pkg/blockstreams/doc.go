/*
Package blockstreams reconciles the registry's declared indexers against the
fleet of running block streams.

Each control-loop iteration calls Synchronise once with a fresh registry
snapshot. The pass walks every declared indexer, matches it (by account and
function name) against the streams the block streamer reports as running, and
decides between leaving the stream alone, restarting it at a new version, or
starting it for the first time. Streams with no corresponding registry entry
are stopped.

# Stream status

The durable progress store records, per indexer, the registry version its
stream was last started with. Classification against the current registry
version yields one of four statuses:

	new       no recorded version; the stream has never been started
	migrated  recorded version is the legacy-migration sentinel
	synced    recorded version matches the registry
	outdated  recorded version differs from the registry

This classification is independent of the earlier running-stream check, which
compares the *reported* version of the live process. After a coordinator
restart the store can say synced while a stale process is still running; the
pass stops and restarts it regardless.

# Start height

Migrated and synced streams always resume at the last published block + 1. A
synced or migrated stream with no published block is inconsistent state and
fails with ErrNoLastPublishedBlock rather than defaulting to zero. New and
outdated streams start wherever their declared start policy says: the current
registry version (latest), an explicit height, or the same continuation
lookup (continue).

An outdated stream restarting under a new version has its buffered entries
cleared first, unless the policy is continue.

# Failure handling

Per-indexer failures are logged with the indexer's identity and skipped so
one broken indexer cannot block the rest of the fleet. Stopping an
unregistered stream is the exception: a failure there aborts the pass and
surfaces to the control loop.

The version write to the progress store happens only after a successful
start, so a crash mid-pass is safe: re-running the pass from durable state
reproduces the same decisions.
*/
package blockstreams
