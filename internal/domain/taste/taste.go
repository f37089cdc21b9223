// Package taste defines the 6-dimensional taste profile vector.
package taste

// Dimensions is the fixed vector size.
const Dimensions = 6

// Dimension indices, in fixed order.
const (
	Sweet = iota
	Salty
	Sour
	Bitter
	Umami
	Spicy
)

// Names maps dimension indices to their wire names, in fixed order.
var Names = [Dimensions]string{"sweet", "salty", "sour", "bitter", "umami", "spicy"}

// Vector is an immutable 6-dimensional taste profile.
// Each component is clamped to [0, 1]; components need not sum to 1.
type Vector [Dimensions]float64

// New creates a vector with each component clamped to [0, 1].
func New(sweet, salty, sour, bitter, umami, spicy float64) Vector {
	v := Vector{sweet, salty, sour, bitter, umami, spicy}
	return v.clamped()
}

// FromSlice builds a vector from a 6-element slice, clamping components.
// Short slices leave the remaining components at zero; extra elements are ignored.
func FromSlice(vals []float64) Vector {
	var v Vector
	for i := 0; i < Dimensions && i < len(vals); i++ {
		v[i] = vals[i]
	}
	return v.clamped()
}

// FromMap builds a vector from a name → value map, clamping components.
// Missing names default to zero; unknown names are ignored.
func FromMap(m map[string]float64) Vector {
	var v Vector
	for i, name := range Names {
		v[i] = m[name]
	}
	return v.clamped()
}

// ToMap returns the vector as a name → value map.
func (v Vector) ToMap() map[string]float64 {
	m := make(map[string]float64, Dimensions)
	for i, name := range Names {
		m[name] = v[i]
	}
	return m
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

func (v Vector) clamped() Vector {
	for i, c := range v {
		if c < 0 {
			v[i] = 0
		} else if c > 1 {
			v[i] = 1
		}
	}
	return v
}

// Mean returns the element-wise mean of the given vectors.
// An empty input yields the zero vector.
func Mean(vs []Vector) Vector {
	if len(vs) == 0 {
		return Vector{}
	}
	var sum Vector
	for _, v := range vs {
		for i, c := range v {
			sum[i] += c
		}
	}
	for i := range sum {
		sum[i] /= float64(len(vs))
	}
	return sum.clamped()
}

// WeightedMean merges vectors by component-wise weighted average.
// Weights are renormalized to sum to 1; mismatched input lengths or an
// all-zero weight sum yield the zero vector.
func WeightedMean(vs []Vector, weights []float64) Vector {
	if len(vs) == 0 || len(vs) != len(weights) {
		return Vector{}
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return Vector{}
	}
	var out Vector
	for i, v := range vs {
		w := weights[i] / total
		for j, c := range v {
			out[j] += w * c
		}
	}
	return out.clamped()
}
