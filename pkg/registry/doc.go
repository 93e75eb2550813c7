// Package registry reads the declared indexer set from the on-chain registry
// contract through a JSON-RPC node.
package registry
