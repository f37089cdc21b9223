package taste

import (
	"context"

	domtaste "github.com/gustohq/gusto/internal/domain/taste"
)

// ProfileVector derives a baseline preference vector from favorite dish
// names: the mean of the non-zero inferred vectors. Inference failures and
// zero vectors are skipped; no usable favorite yields the zero vector.
func ProfileVector(ctx context.Context, strategy Strategy, favorites []string) domtaste.Vector {
	var vectors []domtaste.Vector
	for _, name := range favorites {
		if name == "" {
			continue
		}
		v, err := strategy.Infer(ctx, name)
		if err != nil || v.IsZero() {
			continue
		}
		vectors = append(vectors, v)
	}
	return domtaste.Mean(vectors)
}
