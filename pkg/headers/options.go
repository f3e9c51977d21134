package headers

import "strings"

// IndexerOption configures an Indexer
type IndexerOption func(*Indexer) error

// WithLabels replaces the recognised header texts
func WithLabels(labels Labels) IndexerOption {
	return func(ix *Indexer) error {
		if strings.TrimSpace(labels.TotalToken) == "" {
			return errEmptyTotalToken
		}
		if labels.Area.Label != "" && strings.EqualFold(labels.Area.Label, labels.Opportunity.Label) {
			return errMetricLabels
		}
		ix.labels = labels
		return nil
	}
}

// WithFallback sets the policy for metric columns without a label.
// A nil policy disables the fallback.
func WithFallback(policy FallbackPolicy) IndexerOption {
	return func(ix *Indexer) error {
		ix.fallback = policy
		return nil
	}
}

// WithImageRow marks the third header row as product image URLs (legacy
// layout) instead of pest names.
func WithImageRow() IndexerOption {
	return func(ix *Indexer) error {
		ix.imageRow = true
		return nil
	}
}
