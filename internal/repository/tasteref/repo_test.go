package tasteref

import (
	"context"
	"errors"
	"testing"

	"github.com/gustohq/gusto/internal/db"
	"github.com/gustohq/gusto/internal/domain/taste"
)

func TestEnsureIndex_CreatesWhenMissing(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) {
		return false, nil
	}

	var gotDef *db.IndexDefinition
	ms.createIndexFn = func(_ context.Context, def *db.IndexDefinition) error {
		gotDef = def
		return nil
	}

	err := repo.EnsureIndex(context.Background(), 1536)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDef == nil {
		t.Fatal("expected CreateIndex to be called")
	}
	if gotDef.Name != indexName {
		t.Errorf("expected index name %q, got %q", indexName, gotDef.Name)
	}
	if len(gotDef.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(gotDef.Fields))
	}
	vecField := gotDef.Fields[1]
	if vecField.VectorDim != 1536 {
		t.Errorf("expected DIM=1536, got %d", vecField.VectorDim)
	}
	if vecField.VectorDistance != db.DistanceCosine {
		t.Errorf("expected cosine distance, got %s", vecField.VectorDistance)
	}
	if vecField.VectorM != 16 || vecField.VectorEFConstruct != 200 {
		t.Errorf("unexpected HNSW params: M=%d EF=%d", vecField.VectorM, vecField.VectorEFConstruct)
	}
}

func TestEnsureIndex_SkipsWhenExists(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) {
		return true, nil
	}
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		t.Fatal("CreateIndex must not be called when index exists")
		return nil
	}

	if err := repo.EnsureIndex(context.Background(), 1536); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpsert_WritesTasteFields(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotItems []db.HashSetItem
	ms.hSetMultiFn = func(_ context.Context, items []db.HashSetItem) error {
		gotItems = items
		return nil
	}

	entries := []taste.ReferenceEntry{
		{
			ID:        "chili",
			Text:      "chili pepper hot",
			Taste:     taste.New(0.1, 0.2, 0, 0, 0.1, 0.9),
			Embedding: testEmbedding(),
		},
	}

	if err := repo.Upsert(context.Background(), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(gotItems))
	}

	item := gotItems[0]
	if item.Key != keyPrefix+"chili" {
		t.Errorf("unexpected key %q", item.Key)
	}
	if item.Fields["text"] != "chili pepper hot" {
		t.Errorf("unexpected text field %q", item.Fields["text"])
	}
	if item.Fields["spicy"] != "0.9" {
		t.Errorf("expected spicy=0.9, got %q", item.Fields["spicy"])
	}
	if item.Fields["embedding"] == "" {
		t.Error("expected embedding field")
	}
}

func TestUpsert_EmptyIsNoop(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.hSetMultiFn = func(_ context.Context, _ []db.HashSetItem) error {
		t.Fatal("HSetMulti must not be called for empty input")
		return nil
	}

	if err := repo.Upsert(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNearest_ParsesMatches(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchKNNFn = func(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
		if q.K != 5 {
			t.Errorf("expected K=5, got %d", q.K)
		}
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				{
					Key:   keyPrefix + "chili",
					Score: 0.92,
					Fields: map[string]string{
						"text":  "chili pepper hot",
						"sweet": "0.1", "salty": "0.2", "sour": "0",
						"bitter": "0", "umami": "0.1", "spicy": "0.9",
					},
				},
				{
					Key:   keyPrefix + "honey",
					Score: 0.61,
					Fields: map[string]string{
						"text":  "honey sweet floral",
						"sweet": "0.95", "salty": "0", "sour": "0",
						"bitter": "0", "umami": "0", "spicy": "0",
					},
				},
			},
		}, nil
	}

	matches, err := repo.Nearest(context.Background(), testEmbedding(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Text != "chili pepper hot" {
		t.Errorf("unexpected text %q", matches[0].Text)
	}
	if matches[0].Similarity != 0.92 {
		t.Errorf("expected similarity 0.92, got %f", matches[0].Similarity)
	}
	if matches[0].Taste[taste.Spicy] != 0.9 {
		t.Errorf("expected spicy=0.9, got %f", matches[0].Taste[taste.Spicy])
	}
	if matches[1].Taste[taste.Sweet] != 0.95 {
		t.Errorf("expected sweet=0.95, got %f", matches[1].Taste[taste.Sweet])
	}
}

func TestNearest_QueriesIndexedVectorField(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) {
		return false, nil
	}
	var gotDef *db.IndexDefinition
	ms.createIndexFn = func(_ context.Context, def *db.IndexDefinition) error {
		gotDef = def
		return nil
	}
	var gotQuery *db.KNNQuery
	ms.searchKNNFn = func(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{}, nil
	}

	if err := repo.EnsureIndex(context.Background(), 1536); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Nearest(context.Background(), testEmbedding(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotDef == nil || gotQuery == nil {
		t.Fatal("expected both CreateIndex and SearchKNN to be called")
	}

	var schemaField string
	for _, f := range gotDef.Fields {
		if f.Type == db.IndexFieldVector {
			schemaField = f.Name
		}
	}
	if schemaField == "" {
		t.Fatal("schema has no vector field")
	}
	if gotQuery.VectorField != schemaField {
		t.Errorf("KNN queries field %q, schema indexes %q", gotQuery.VectorField, schemaField)
	}
}

func TestNearest_EmptyResult(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchKNNFn = func(_ context.Context, _ *db.KNNQuery) (*db.SearchResult, error) {
		return &db.SearchResult{Total: 0}, nil
	}

	matches, err := repo.Nearest(context.Background(), testEmbedding(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches != nil {
		t.Fatalf("expected nil matches, got %v", matches)
	}
}

func TestNearest_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchKNNFn = func(_ context.Context, _ *db.KNNQuery) (*db.SearchResult, error) {
		return nil, errors.New("index unavailable")
	}

	_, err := repo.Nearest(context.Background(), testEmbedding(), 5)
	if err == nil {
		t.Fatal("expected error")
	}
}
