package main

import (
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xtding233/dolltower-backend/internal/dolltower"
	"github.com/xtding233/dolltower-backend/internal/game"
)

type serverConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
	// MaxGames caps a single request so one call cannot pin the process.
	MaxGames int  `env:"MAX_GAMES" envDefault:"100000"`
	Debug    bool `env:"DEBUG" envDefault:"false"`
}

type simulateResponse struct {
	Summaries []dolltower.Summary  `json:"summaries"`
	Stats     dolltower.BatchStats `json:"stats"`
	Failed    int                  `json:"failed"`
	Warnings  []string             `json:"warnings,omitempty"`
	Events    []dolltower.Event    `json:"events,omitempty"`
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal("parse environment", zap.Error(err))
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/simulate", simulateHandler(cfg, logger))

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func simulateHandler(cfg serverConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req game.Config
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		batchCfg, warnings, err := game.Resolve(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if batchCfg.TotalGames > cfg.MaxGames {
			c.JSON(http.StatusBadRequest, gin.H{"error": "total_games exceeds server limit"})
			return
		}

		start := time.Now()
		result, err := dolltower.RunBatch(c.Request.Context(), batchCfg)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Info("batch complete",
			zap.Int("games", batchCfg.TotalGames),
			zap.Int("failed", result.Failed),
			zap.Uint64("seed", batchCfg.Seed),
			zap.Duration("elapsed", time.Since(start)),
		)

		resp := simulateResponse{
			Summaries: result.Summaries,
			Stats:     dolltower.Summarize(result),
			Failed:    result.Failed,
			Warnings:  warnings,
		}
		// full event logs are large; only ship them on request
		if c.Query("include_events") == "true" {
			resp.Events = result.Events
		}
		c.JSON(http.StatusOK, resp)
	}
}
