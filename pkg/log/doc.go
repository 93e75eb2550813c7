/*
Package log provides structured logging for the coordinator built on zerolog.

Call Init once at startup, then use the package-level helpers or build child
loggers with the With* functions. WithIndexer attaches the account_id,
function_name and version fields so every event emitted while reconciling one
indexer carries its identity:

	logger := log.WithIndexer(config)
	logger.Info().Msg("Stopping outdated block stream")

Output is human-readable console format by default; set JSONOutput for
machine-parseable logs in production.
*/
package log
