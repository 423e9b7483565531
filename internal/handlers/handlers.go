package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cricsight/prediction-api/internal/logic"
	"github.com/cricsight/prediction-api/internal/store"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ScrapeQueue defines the interface for the scrape-ingest worker pool
type ScrapeQueue interface {
	Enqueue(jobID string) bool
	QueueDepth() int
}

type Config struct {
	Store      *store.Store
	ScrapePool ScrapeQueue
	Logger     *zap.Logger
	// Services
	Prediction logic.PredictionService
	Narrative  logic.NarrativeService
}

type Handler struct {
	store      *store.Store
	pool       ScrapeQueue
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	prediction logic.PredictionService
	narrative  logic.NarrativeService
}

func New(cfg Config) *Handler {
	return &Handler{
		store:      cfg.Store,
		pool:       cfg.ScrapePool,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		prediction: cfg.Prediction,
		narrative:  cfg.Narrative,
	}
}
