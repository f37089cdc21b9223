package db

import (
	"encoding/binary"
	"math"
)

// KNNQuery is the input for vector similarity search. VectorField must
// name the vector attribute of the target index's schema.
type KNNQuery struct {
	IndexName    string
	VectorField  string
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit. Score is cosine similarity in [0,1].
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// EncodeVector serializes a float32 vector to the little-endian byte layout
// expected by FT.SEARCH vector fields.
func EncodeVector(vec []float32) string {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return string(buf)
}

// DecodeVector deserializes the byte layout produced by EncodeVector.
func DecodeVector(data string) []float32 {
	vec := make([]float32, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32([]byte(data)[i*4:]))
	}
	return vec
}
