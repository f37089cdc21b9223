// Package orchestrator drives one recommendation request through its
// phases, from raw query to ranked, annotated response.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/profile"
	"github.com/gustohq/gusto/internal/domain/query"
	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/metrics"
	"github.com/gustohq/gusto/internal/usecase/beverage"
	"github.com/gustohq/gusto/internal/usecase/budget"
)

const (
	greetingText   = "Hi! Tell me what you're craving and where, and I'll find you something good."
	irrelevantText = "I can help with restaurant and dish recommendations. What are you in the mood to eat?"
	apologyText    = "Sorry, I'm having trouble reaching restaurant data right now. Please try again in a moment."
	noResultsText  = "I couldn't find anything matching that. Maybe try a different dish or location?"
)

// Config holds orchestrator settings.
type Config struct {
	// DefaultLocation is used when the query names no location.
	DefaultLocation string
	// RetryDelay is the backoff before the single discovery retry.
	RetryDelay time.Duration
}

// Service coordinates query understanding, discovery, inference, ranking,
// and enrichment for a single request.
type Service struct {
	understander Understander
	discovery    Discovery
	menus        MenuSource
	tastes       TasteSource
	ranker       Ranker
	cfg          Config
	logger       *zap.Logger
}

// New creates the orchestrator.
func New(understander Understander, discovery Discovery, menus MenuSource, tastes TasteSource, ranker Ranker, cfg Config, logger *zap.Logger) *Service {
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Service{
		understander: understander,
		discovery:    discovery,
		menus:        menus,
		tastes:       tastes,
		ranker:       ranker,
		cfg:          cfg,
		logger:       logger,
	}
}

// request tracks one in-flight recommendation through the state machine.
type request struct {
	id     string
	state  State
	logger *zap.Logger
}

func (r *request) advance(to State) {
	if !r.state.CanTransition(to) {
		r.logger.Error("Illegal state transition",
			zap.String("request_id", r.id),
			zap.String("from", string(r.state)),
			zap.String("to", string(to)),
		)
	}
	r.logger.Debug("Request state",
		zap.String("request_id", r.id),
		zap.String("from", string(r.state)),
		zap.String("to", string(to)),
	)
	r.state = to
}

// Recommend answers one user query. maxResults of zero keeps the
// configured ranking limit. It never returns an error: failures degrade
// to an apologetic response.
func (s *Service) Recommend(ctx context.Context, raw string, prof profile.Profile, maxResults int) recommend.Response {
	req := &request{id: uuid.NewString(), state: StateReceived, logger: s.logger}

	q := s.understander.Understand(ctx, raw)
	req.advance(StateUnderstood)

	if !q.Intent.Relevant() {
		req.advance(StateCompleted)
		metrics.RecommendationsTotal.WithLabelValues("short_circuit").Inc()
		text := irrelevantText
		if q.Intent == query.IntentGreeting {
			text = greetingText
		}
		return recommend.Response{RequestID: req.id, ResponseText: text}
	}

	req.advance(StateDiscovering)
	candidates, err := s.discover(ctx, q)
	if err != nil {
		req.advance(StateErrored)
		metrics.RecommendationsTotal.WithLabelValues("errored").Inc()
		s.logger.Error("Discovery failed after retry",
			zap.String("request_id", req.id),
			zap.Error(err),
		)
		return recommend.Response{RequestID: req.id, ResponseText: apologyText, Degraded: true}
	}
	if len(candidates) == 0 {
		req.advance(StateCompleted)
		metrics.RecommendationsTotal.WithLabelValues("completed").Inc()
		return recommend.Response{RequestID: req.id, ResponseText: noResultsText}
	}

	req.advance(StateScoring)
	candidates, degraded := s.attachTastes(ctx, candidates)

	userVec := prof.Taste
	if userVec.IsZero() && len(prof.Favorites) > 0 {
		userVec = profileVector(ctx, s.tastes, prof.Favorites)
	}

	outcome := s.ranker.Run(ctx, candidates, prof, q, userVec)
	degraded = degraded || outcome.ReducedConfidence

	if len(outcome.Recommendations) == 0 {
		req.advance(StateCompleted)
		metrics.RecommendationsTotal.WithLabelValues("completed").Inc()
		return recommend.Response{RequestID: req.id, ResponseText: noResultsText, Degraded: degraded}
	}

	recs := outcome.Recommendations
	if maxResults > 0 && len(recs) > maxResults {
		recs = recs[:maxResults]
	}

	req.advance(StateEnriching)
	recs = s.enrich(ctx, recs, prof)

	req.advance(StateCompleted)
	outcomeLabel := "completed"
	if degraded {
		outcomeLabel = "degraded"
	}
	metrics.RecommendationsTotal.WithLabelValues(outcomeLabel).Inc()

	return recommend.Response{
		RequestID:       req.id,
		Recommendations: recs,
		ResponseText:    responseText(q, recs, degraded),
		Degraded:        degraded,
	}
}

// discover searches once and retries once after a backoff.
func (s *Service) discover(ctx context.Context, q query.Query) ([]restaurant.Restaurant, error) {
	term := q.Dish
	if term == "" {
		term = q.Cuisine
	}
	if term == "" {
		term = "restaurants"
	}
	location := q.Location
	if location == "" {
		location = s.cfg.DefaultLocation
	}

	candidates, err := s.discovery.Search(ctx, term, location)
	if err == nil {
		return s.attachMenus(ctx, candidates), nil
	}

	s.logger.Warn("Discovery failed, retrying",
		zap.String("term", term),
		zap.String("location", location),
		zap.Error(err),
	)
	select {
	case <-time.After(s.cfg.RetryDelay):
	case <-ctx.Done():
		return nil, fmt.Errorf("discovery retry: %w", ctx.Err())
	}

	candidates, err = s.discovery.Search(ctx, term, location)
	if err != nil {
		return nil, err
	}
	return s.attachMenus(ctx, candidates), nil
}

// attachMenus fills in each candidate's menu. Menu failures drop the
// candidate rather than the request.
func (s *Service) attachMenus(ctx context.Context, candidates []restaurant.Restaurant) []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if len(r.Dishes()) > 0 {
			out = append(out, r)
			continue
		}
		dishes, err := s.menus.Menu(ctx, r)
		if err != nil {
			s.logger.Warn("Menu lookup failed",
				zap.String("restaurant", r.Name()),
				zap.Error(err),
			)
			continue
		}
		out = append(out, r.WithDishes(dishes))
	}
	return out
}

// attachTastes infers a taste vector for every dish.
func (s *Service) attachTastes(ctx context.Context, candidates []restaurant.Restaurant) ([]restaurant.Restaurant, bool) {
	degraded := false
	out := make([]restaurant.Restaurant, 0, len(candidates))
	for _, r := range candidates {
		dishes := make([]dish.Dish, len(r.Dishes()))
		for i, d := range r.Dishes() {
			text := d.Name()
			if d.Description() != "" {
				text += ". " + d.Description()
			}
			res := s.tastes.Blend(ctx, text)
			degraded = degraded || res.Degraded
			dishes[i] = d.WithTaste(res.Vector)
		}
		out = append(out, r.WithDishes(dishes))
	}
	return out, degraded
}

// enrich attaches beverage and budget annotations concurrently. Both are
// best-effort; neither can fail the request.
func (s *Service) enrich(ctx context.Context, recs []recommend.Recommendation, prof profile.Profile) []recommend.Recommendation {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i := range recs {
			recs[i].Beverage = beverage.Pair(recs[i].Restaurant)
		}
		return nil
	})
	g.Go(func() error {
		for i := range recs {
			recs[i].Budget = budget.Annotate(recs[i].Restaurant, prof.BudgetCeiling)
		}
		return nil
	})
	_ = g.Wait()
	return recs
}
