package domain

import "errors"

var (
	// ErrInferenceUnavailable signals a language-model inference failure
	// (API error, timeout, or unparsable reply).
	ErrInferenceUnavailable = errors.New("inference unavailable")
	// ErrSearchUnavailable signals an embedding or vector index failure.
	ErrSearchUnavailable = errors.New("semantic search unavailable")
	// ErrDiscoveryUnavailable signals that the restaurant discovery source
	// failed after retries.
	ErrDiscoveryUnavailable = errors.New("discovery unavailable")
	// ErrClassificationAmbiguous signals that neither keyword evidence nor
	// the model produced a usable classification. Non-fatal: triggers a
	// fallback, never surfaced to the caller.
	ErrClassificationAmbiguous = errors.New("classification ambiguous")
	// ErrNoCandidatesFound signals an empty candidate set after filtering.
	// Surfaced as an empty recommendation list with explanatory text.
	ErrNoCandidatesFound = errors.New("no candidates found")
)
