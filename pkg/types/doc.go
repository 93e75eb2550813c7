/*
Package types defines the shared domain model for the coordinator: the
registry snapshot of declared indexers, their start policies, and the records
reported by the block streamer and runner services for currently running
workers.

An indexer is identified by (account ID, function name). Its registry version
is derived from block heights: the height of the last registry update, or the
creation height for indexers never updated. Reconciliation compares this
desired version against the version a running worker reports and the version
durably recorded in the progress store, which may disagree after a
coordinator restart.
*/
package types
