package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/config"
	dbRedis "github.com/gustohq/gusto/internal/db/redis"
	logpkg "github.com/gustohq/gusto/internal/logger"
	"github.com/gustohq/gusto/internal/metrics"
	"github.com/gustohq/gusto/internal/repository/infercache"
	"github.com/gustohq/gusto/internal/repository/tasteref"
	chiTransport "github.com/gustohq/gusto/internal/transport/chi"
	openaiTransport "github.com/gustohq/gusto/internal/transport/openai"
	"github.com/gustohq/gusto/internal/transport/yelp"
	healthuc "github.com/gustohq/gusto/internal/usecase/health"
	"github.com/gustohq/gusto/internal/usecase/orchestrator"
	"github.com/gustohq/gusto/internal/usecase/pipeline"
	"github.com/gustohq/gusto/internal/usecase/queryintent"
	"github.com/gustohq/gusto/internal/usecase/scoring"
	tasteuc "github.com/gustohq/gusto/internal/usecase/taste"
	"github.com/gustohq/gusto/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting gusto API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Store not ready", zap.Error(err))
	}
	logger.Info("Connected to store")

	// Register inference metrics explicitly (no init())
	metrics.Register()

	completer := openaiTransport.NewCompleter(&openaiTransport.CompleterConfig{
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
		Provider: "openai",
		Timeout:  time.Duration(cfg.LLM.TimeoutSec) * time.Second,
		Logger:   logger,
	})

	baseEmbedder := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   "openai",
		Logger:     logger,
	})

	cacheTTL := time.Duration(cfg.Embedding.CacheTTL) * time.Second
	embedder := infercache.NewEmbedder(
		baseEmbedder, store, cacheTTL,
		metrics.CacheTotal.MustCurryWith(prometheus.Labels{"kind": "embedding"}),
		logger,
	)
	labelCache := infercache.NewLabelCache(
		store, cacheTTL,
		metrics.CacheTotal.MustCurryWith(prometheus.Labels{"kind": "label"}),
		logger,
	)

	refRepo := tasteref.New(store, tasteref.HNSWParams{
		M:           cfg.Inference.HNSWM,
		EFConstruct: cfg.Inference.HNSWEFConstruct,
	})

	// Seed the taste reference corpus. Semantic inference degrades
	// gracefully when seeding fails, so this is not fatal.
	seeder := tasteuc.NewSeeder(refRepo, embedder, tasteuc.DefaultLexicon, cfg.Embedding.Dimensions, logger)
	if err := seeder.Seed(ctx); err != nil {
		logger.Warn("Taste reference seeding failed", zap.Error(err))
	}

	keyword := tasteuc.NewInstrumented(tasteuc.NewKeyword(tasteuc.DefaultLexicon), logger)
	semantic := tasteuc.NewInstrumented(
		tasteuc.NewSemantic(embedder, refRepo, cfg.Inference.SemanticTopK, cfg.Inference.SemanticMinSim), logger)
	llm := tasteuc.NewInstrumented(tasteuc.NewLLM(completer, labelCache, logger), logger)
	hybrid := tasteuc.NewHybrid(keyword, semantic, llm, tasteuc.Weights{
		Keyword:  cfg.Inference.KeywordWeight,
		Semantic: cfg.Inference.SemanticWeight,
		LLM:      cfg.Inference.LLMWeight,
	}, logger)

	intents := queryintent.New(completer, logger)

	scorer := scoring.NewScorer(cfg.Ranking.FavoriteBoost)
	diet := pipeline.NewDietClassifier(completer, labelCache, logger)
	allergy := pipeline.NewAllergyFilter(completer, logger)
	pipe := pipeline.New(diet, allergy, scorer, pipeline.RankParams{
		MaxResults: cfg.Ranking.MaxResults,
		TopDishes:  cfg.Ranking.TopDishes,
	}, logger)

	discovery := yelp.New(&yelp.Config{
		APIKey:  cfg.Discovery.APIKey,
		BaseURL: cfg.Discovery.BaseURL,
		Timeout: time.Duration(cfg.Discovery.TimeoutSec) * time.Second,
		Limit:   cfg.Discovery.Limit,
		Logger:  logger,
	})

	orch := orchestrator.New(intents, discovery, discovery, hybrid, pipe, orchestrator.Config{
		DefaultLocation: cfg.Discovery.DefaultLocation,
		RetryDelay:      time.Duration(cfg.Discovery.RetryDelaySec) * time.Second,
	}, logger)

	healthSvc := healthuc.New(store, baseEmbedder)

	server := chiTransport.NewServer(orch, healthSvc, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
