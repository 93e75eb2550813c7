// Package executors reconciles registered indexers against the runner's
// executor fleet. Executors carry no durable coordinator state: a restarted
// executor resumes from whatever its block stream holds, so reconciliation
// only compares reported versions against the registry.
package executors
