package pipeline

import (
	"context"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/taste"
)

type mockCompleter struct {
	replyFn func(prompt string) (string, error)
	calls   int
	prompts []string
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.replyFn != nil {
		return m.replyFn(prompt)
	}
	return "", nil
}

func tastyDish(name, description string, v taste.Vector) dish.Dish {
	return dish.New(name, description).WithTaste(v)
}
