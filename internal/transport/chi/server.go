// Package chi exposes the recommendation service over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/profile"
	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/metrics"
	healthuc "github.com/gustohq/gusto/internal/usecase/health"
)

const maxBodyBytes = 64 << 10

var errInvalidDiet = errors.New(`diet must be "vegetarian" or "non-vegetarian"`)

// Recommender answers one user query.
type Recommender interface {
	Recommend(ctx context.Context, raw string, prof profile.Profile, maxResults int) recommend.Response
}

// Server is the HTTP API server.
type Server struct {
	recommender Recommender
	health      *healthuc.Service
	apiKeys     []string
	logger      *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(recommender Recommender, health *healthuc.Service, apiKeys []string, logger *zap.Logger) *Server {
	return &Server{
		recommender: recommender,
		health:      health,
		apiKeys:     apiKeys,
		logger:      logger,
	}
}

// Router builds the route tree with metrics and auth middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(middleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())
	r.Use(BearerAuthMiddleware(s.apiKeys))

	r.Post("/v1/recommend", s.handleRecommend)
	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}

// recommendRequest is the POST /v1/recommend body.
type recommendRequest struct {
	Query       string             `json:"query"`
	UserProfile userProfileRequest `json:"userProfile"`
	MaxResults  int                `json:"maxResults,omitempty"`
}

type userProfileRequest struct {
	TasteVector   map[string]float64 `json:"tasteVector,omitempty"`
	Diet          string             `json:"diet,omitempty"`
	Allergies     []string           `json:"allergies,omitempty"`
	Favorites     []string           `json:"favorites,omitempty"`
	BudgetCeiling float64            `json:"budgetCeiling,omitempty"`
}

type recommendResponse struct {
	RequestID       string               `json:"requestId"`
	Recommendations []recommendationItem `json:"recommendations"`
	ResponseText    string               `json:"responseText"`
	Degraded        bool                 `json:"degraded"`
}

type recommendationItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Location    string             `json:"location,omitempty"`
	Score       float64            `json:"score"`
	Rating      float64            `json:"rating,omitempty"`
	ReviewCount int                `json:"reviewCount,omitempty"`
	URL         string             `json:"url,omitempty"`
	Photos      []string           `json:"photos,omitempty"`
	TasteVector map[string]float64 `json:"tasteVector,omitempty"`
	Dishes      []dishItem         `json:"dishes,omitempty"`
	Beverage    *beverageItem      `json:"beverage,omitempty"`
	Budget      *budgetItem        `json:"budget,omitempty"`
}

type dishItem struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

type beverageItem struct {
	Styles []string `json:"styles"`
	Reason string   `json:"reason"`
}

type budgetItem struct {
	PriceTier    int  `json:"priceTier"`
	WithinBudget bool `json:"withinBudget"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.logger.Debug("Bad request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "Query is required")
		return
	}

	prof, err := profileFromRequest(req.UserProfile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	resp := s.recommender.Recommend(r.Context(), req.Query, prof, req.MaxResults)
	writeJSON(w, http.StatusOK, responseToJSON(resp))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	writeJSON(w, httpStatus, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

func profileFromRequest(req userProfileRequest) (profile.Profile, error) {
	prof := profile.Profile{
		Allergies:     req.Allergies,
		Favorites:     req.Favorites,
		BudgetCeiling: req.BudgetCeiling,
	}

	switch req.Diet {
	case "":
		prof.Diet = dish.DietUnknown
	case string(dish.DietVegetarian), string(dish.DietNonVegetarian):
		prof.Diet = dish.Diet(req.Diet)
	default:
		return profile.Profile{}, errInvalidDiet
	}

	if len(req.TasteVector) > 0 {
		prof.Taste = taste.FromMap(req.TasteVector)
	}
	return prof, nil
}

func responseToJSON(resp recommend.Response) recommendResponse {
	items := make([]recommendationItem, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		items = append(items, recommendationToJSON(rec))
	}
	return recommendResponse{
		RequestID:       resp.RequestID,
		Recommendations: items,
		ResponseText:    resp.ResponseText,
		Degraded:        resp.Degraded,
	}
}

func recommendationToJSON(rec recommend.Recommendation) recommendationItem {
	r := rec.Restaurant

	dishes := make([]dishItem, 0, len(rec.Dishes))
	for _, d := range rec.Dishes {
		dishes = append(dishes, dishItem{Name: d.Dish.Name(), Similarity: d.Similarity})
	}

	item := recommendationItem{
		ID:          r.ID(),
		Name:        r.Name(),
		Location:    r.Location(),
		Score:       rec.Score,
		Rating:      r.Rating(),
		ReviewCount: r.ReviewCount(),
		URL:         r.URL(),
		Photos:      r.Photos(),
		Dishes:      dishes,
	}
	if !r.Taste().IsZero() {
		item.TasteVector = r.Taste().ToMap()
	}
	if rec.Beverage != nil {
		item.Beverage = &beverageItem{Styles: rec.Beverage.Styles, Reason: rec.Beverage.Reason}
	}
	if rec.Budget != nil {
		item.Budget = &budgetItem{PriceTier: rec.Budget.PriceTier, WithinBudget: rec.Budget.WithinBudget}
	}
	return item
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
