/*
Package migration gates which accounts are visible to reconciliation and
moves accounts from the legacy system into the coordinator's control.

The allowlist lives in the progress store. Each entry tracks whether the
account has acknowledged the migration, whether it has been migrated, and
whether a previous migration attempt failed. The control loop runs the
migration stage once per iteration, before either synchronisation pass, and
then filters the registry snapshot down to fully migrated accounts.
*/
package migration
