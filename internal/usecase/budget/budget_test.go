package budget

import (
	"reflect"
	"testing"

	"github.com/gustohq/gusto/internal/domain/restaurant"
)

func TestTiers(t *testing.T) {
	cases := []struct {
		maxPrice float64
		want     []int
	}{
		{0, nil},
		{-5, nil},
		{8, []int{1}},
		{10, []int{1}},
		{25, []int{1, 2}},
		{30, []int{1, 2}},
		{45, []int{2, 3}},
		{60, []int{2, 3}},
		{61, []int{3, 4}},
		{200, []int{3, 4}},
	}
	for _, tc := range cases {
		if got := Tiers(tc.maxPrice); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tiers(%.0f) = %v, want %v", tc.maxPrice, got, tc.want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	cheap := restaurant.New("r1", "Taco Cart", "Austin, TX", 1, 50)
	fancy := restaurant.New("r2", "Tasting Room", "Austin, TX", 4, 200)
	unknown := restaurant.New("r3", "Pop Up", "Austin, TX", 0, 3)

	if got := Annotate(cheap, 0); got != nil {
		t.Fatalf("Annotate with no ceiling = %+v, want nil", got)
	}

	got := Annotate(cheap, 25)
	if got == nil || !got.WithinBudget || got.PriceTier != 1 {
		t.Errorf("Annotate(tier 1, $25) = %+v, want within budget", got)
	}

	got = Annotate(fancy, 25)
	if got == nil || got.WithinBudget {
		t.Errorf("Annotate(tier 4, $25) = %+v, want over budget", got)
	}

	got = Annotate(fancy, 100)
	if got == nil || !got.WithinBudget {
		t.Errorf("Annotate(tier 4, $100) = %+v, want within budget", got)
	}

	got = Annotate(unknown, 25)
	if got == nil || !got.WithinBudget || got.PriceTier != 0 {
		t.Errorf("Annotate(unknown tier, $25) = %+v, want within budget with tier 0", got)
	}
}
