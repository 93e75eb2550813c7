package types

// AccountID identifies the account that owns one or more indexers.
type AccountID string

// IndexerRegistry is a point-in-time snapshot of every indexer the registry
// contract declares, keyed by owning account and function name. It is rebuilt
// from scratch each control-loop iteration and never mutated in place.
type IndexerRegistry map[AccountID]map[string]IndexerConfig

// StartBlockMode selects how a (re)started block stream picks its first block.
type StartBlockMode string

const (
	// StartBlockLatest begins at the indexer's current registry version.
	StartBlockLatest StartBlockMode = "latest"
	// StartBlockHeight begins at an explicit block height.
	StartBlockHeight StartBlockMode = "height"
	// StartBlockContinue resumes from the last published block.
	StartBlockContinue StartBlockMode = "continue"
)

// StartBlock is the start policy declared in the registry for an indexer.
// Height is only meaningful when Mode is StartBlockHeight.
type StartBlock struct {
	Mode   StartBlockMode
	Height uint64
}

// Latest returns a StartBlock that begins at the registry version.
func Latest() StartBlock {
	return StartBlock{Mode: StartBlockLatest}
}

// Height returns a StartBlock that begins at the given block height.
func Height(height uint64) StartBlock {
	return StartBlock{Mode: StartBlockHeight, Height: height}
}

// Continue returns a StartBlock that resumes from recorded progress.
func Continue() StartBlock {
	return StartBlock{Mode: StartBlockContinue}
}

// RuleStatus filters matched transactions by their execution outcome.
type RuleStatus string

const (
	RuleStatusAny     RuleStatus = "any"
	RuleStatusSuccess RuleStatus = "success"
	RuleStatusFailure RuleStatus = "failure"
)

// MatchingRule declares which on-chain actions an indexer consumes. The
// coordinator carries it opaquely to the block streamer; it plays no part in
// reconciliation decisions.
type MatchingRule struct {
	AffectedAccountID string
	Status            RuleStatus
}

// IndexerConfig is one indexer's declared configuration, immutable for the
// lifetime of the registry snapshot it was fetched in.
type IndexerConfig struct {
	AccountID    AccountID
	FunctionName string
	Code         string
	Schema       string
	Rule         MatchingRule

	CreatedAtBlockHeight uint64
	// UpdatedAtBlockHeight is nil when the indexer has never been updated
	// since creation.
	UpdatedAtBlockHeight *uint64

	StartBlock StartBlock
}

// RegistryVersion is the indexer's desired configuration version: the height
// of its last update, falling back to its creation height.
func (c IndexerConfig) RegistryVersion() uint64 {
	if c.UpdatedAtBlockHeight != nil {
		return *c.UpdatedAtBlockHeight
	}
	return c.CreatedAtBlockHeight
}

// StreamInfo describes one running block stream as reported by the block
// streamer service. Version is the registry version the stream was started
// with, not necessarily the version the registry declares now.
type StreamInfo struct {
	StreamID     string
	AccountID    string
	FunctionName string
	Version      uint64
}

// ExecutorInfo describes one running executor as reported by the runner
// service.
type ExecutorInfo struct {
	ExecutorID   string
	AccountID    string
	FunctionName string
	Version      uint64
	Status       string
}
