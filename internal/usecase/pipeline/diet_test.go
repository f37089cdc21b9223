package pipeline

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
)

func TestDietClassifier_KeywordFastPath(t *testing.T) {
	mc := &mockCompleter{}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	got := c.Classify(context.Background(), dish.New("Chicken Tikka", ""))
	if got != dish.DietNonVegetarian {
		t.Errorf("expected non-vegetarian, got %s", got)
	}
	if mc.calls != 0 {
		t.Errorf("expected no collaborator calls, got %d", mc.calls)
	}
}

func TestDietClassifier_DescriptionScanned(t *testing.T) {
	c := NewDietClassifier(&mockCompleter{}, nil, zap.NewNop())

	got := c.Classify(context.Background(), dish.New("House Special", "slow cooked pork belly"))
	if got != dish.DietNonVegetarian {
		t.Errorf("expected non-vegetarian from description, got %s", got)
	}
}

func TestDietClassifier_LLMFallback(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "veg", nil }}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	got := c.Classify(context.Background(), dish.New("Palak Paneer", ""))
	if got != dish.DietVegetarian {
		t.Errorf("expected vegetarian, got %s", got)
	}
	if mc.calls != 1 {
		t.Errorf("expected one collaborator call, got %d", mc.calls)
	}
}

func TestDietClassifier_NonInReplyMeansNonVeg(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "Non-veg.", nil }}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	got := c.Classify(context.Background(), dish.New("Shepherd's Pie", ""))
	if got != dish.DietNonVegetarian {
		t.Errorf("expected non-vegetarian, got %s", got)
	}
}

func TestDietClassifier_UnavailableIsUnknown(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "", errors.New("api down") }}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	got := c.Classify(context.Background(), dish.New("Mystery Bowl", ""))
	if got != dish.DietUnknown {
		t.Errorf("expected unknown, got %s", got)
	}
}

func TestFilterDiet_VegetarianExcludesAllNonVeg(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "veg", nil }}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	dishes := []dish.Dish{
		dish.New("Chicken Wings", ""),
		dish.New("Beef Burger", ""),
		dish.New("Margherita Pizza", ""),
		dish.New("Shrimp Tempura", ""),
	}

	kept := c.FilterDiet(context.Background(), dishes, dish.DietVegetarian)
	for _, d := range kept {
		if d.Diet() == dish.DietNonVegetarian {
			t.Errorf("non-vegetarian dish %q survived vegetarian filter", d.Name())
		}
	}
	if len(kept) != 1 || kept[0].Name() != "Margherita Pizza" {
		t.Errorf("expected only Margherita Pizza, got %d dishes", len(kept))
	}
}

func TestFilterDiet_UnknownRetained(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "", errors.New("api down") }}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	dishes := []dish.Dish{dish.New("Mystery Bowl", "")}

	kept := c.FilterDiet(context.Background(), dishes, dish.DietVegetarian)
	if len(kept) != 1 {
		t.Fatal("expected unclassifiable dish to be retained")
	}
	if kept[0].Diet() != dish.DietUnknown {
		t.Errorf("expected unknown classification, got %s", kept[0].Diet())
	}
}

func TestFilterDiet_NoPreferencePassesThrough(t *testing.T) {
	mc := &mockCompleter{}
	c := NewDietClassifier(mc, nil, zap.NewNop())

	dishes := []dish.Dish{dish.New("Chicken Wings", ""), dish.New("Salad", "")}

	kept := c.FilterDiet(context.Background(), dishes, dish.DietUnknown)
	if len(kept) != 2 {
		t.Errorf("expected passthrough, got %d dishes", len(kept))
	}
	if mc.calls != 0 {
		t.Errorf("expected no classification without preference, got %d calls", mc.calls)
	}
}
