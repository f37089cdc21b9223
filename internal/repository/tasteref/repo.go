// Package tasteref stores the taste reference corpus: short ingredient and
// dish texts with known taste profiles, indexed by embedding for KNN lookup.
package tasteref

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gustohq/gusto/internal/db"
	"github.com/gustohq/gusto/internal/domain"
	"github.com/gustohq/gusto/internal/domain/taste"
)

var (
	indexName = domain.KeyPrefix + "tasteref:idx"
	keyPrefix = domain.KeyPrefix + "tasteref:"
)

// vectorField names the embedding attribute in both the index schema and
// every KNN query against it.
const vectorField = "embedding"

// store is the consumer interface for the reference corpus (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index string) (int, error)
}

// HNSWParams tunes the vector index build.
type HNSWParams struct {
	M           int
	EFConstruct int
}

// Repo implements the reference corpus persistence.
type Repo struct {
	store  store
	params HNSWParams
}

// New creates a reference corpus repository.
func New(s store, params HNSWParams) *Repo {
	return &Repo{store: s, params: params}
}

// EnsureIndex creates the HNSW index for the corpus if it does not exist.
func (r *Repo) EnsureIndex(ctx context.Context, dim int) error {
	exists, err := r.store.IndexExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check tasteref index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     indexName,
		Prefixes: []string{keyPrefix},
		Fields: []db.IndexField{
			{Name: "text", Type: db.IndexFieldText},
			{
				Name:              vectorField,
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         dim,
				VectorDistance:    db.DistanceCosine,
				VectorM:           r.params.M,
				VectorEFConstruct: r.params.EFConstruct,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create tasteref index: %w", err)
	}
	return nil
}

// Count returns the number of indexed reference entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, indexName)
	if err != nil {
		return 0, fmt.Errorf("count tasteref entries: %w", err)
	}
	return n, nil
}

// Upsert writes reference entries in a single pipelined batch.
func (r *Repo) Upsert(ctx context.Context, entries []taste.ReferenceEntry) error {
	if len(entries) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, 0, len(entries))
	for _, e := range entries {
		fields := map[string]string{
			"text":      e.Text,
			vectorField: db.EncodeVector(e.Embedding),
		}
		for i, name := range taste.Names {
			fields[name] = strconv.FormatFloat(e.Taste[i], 'f', -1, 64)
		}
		items = append(items, db.HashSetItem{Key: keyPrefix + e.ID, Fields: fields})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("upsert tasteref entries: %w", err)
	}
	return nil
}

// Nearest returns the topK reference entries closest to the given embedding,
// ordered by descending similarity.
func (r *Repo) Nearest(ctx context.Context, embedding []float32, topK int) ([]taste.Reference, error) {
	returnFields := []string{"text"}
	returnFields = append(returnFields, taste.Names[:]...)

	q := &db.KNNQuery{
		IndexName:    indexName,
		VectorField:  vectorField,
		Vector:       embedding,
		K:            topK,
		ReturnFields: returnFields,
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search tasteref: %w", err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	matches := make([]taste.Reference, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		matches = append(matches, parseReference(entry))
	}
	return matches, nil
}

// parseReference converts a search entry into a corpus match.
func parseReference(entry db.SearchEntry) taste.Reference {
	ref := taste.Reference{Similarity: entry.Score}

	vals := make(map[string]float64, taste.Dimensions)
	for k, v := range entry.Fields {
		if k == "text" {
			ref.Text = v
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			vals[k] = f
		}
	}
	ref.Taste = taste.FromMap(vals)
	return ref
}
