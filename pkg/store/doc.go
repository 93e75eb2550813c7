/*
Package store provides the durable progress store backing reconciliation
decisions, implemented on BoltDB.

Per indexer it holds the recorded stream version (the registry version the
stream was last successfully started with), the last published block height,
and the buffered stream entries a version change may need to discard. It also
holds the account allowlist driving the migration from the legacy system.

The coordinator is the only writer of stream versions, and it writes them only
after a stream has been successfully started; a crash between a stop and the
subsequent start is therefore safe to retry. BoltDB serialises concurrent
access to the file, so the two synchronisation passes can share one store
without coordination in this package's callers.
*/
package store
