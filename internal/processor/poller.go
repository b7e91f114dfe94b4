package processor

import (
	"context"
	"errors"
	"time"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

const (
	defaultBatchSize    = 100
	defaultPollInterval = 30 * time.Second
)

// PendingItem is one queued content item with its queue id and project.
type PendingItem struct {
	ID        int64
	ProjectID string
	Input     domain.ContentInput
}

// ContentSource supplies pending content items and records completion.
type ContentSource interface {
	// QueryPending returns up to limit unclassified items, oldest first.
	QueryPending(ctx context.Context, limit int) ([]*PendingItem, error)

	// MarkClassified flags the given queue ids as classified.
	MarkClassified(ctx context.Context, ids []int64) error
}

// Poller periodically drains the content source and runs the analysis
// pipeline per project.
type Poller struct {
	source   ContentSource
	analyzer *Analyzer
	logger   Logger

	batchSize    int
	pollInterval time.Duration
	running      bool
	stopChan     chan struct{}
}

// PollerConfig holds poller configuration.
type PollerConfig struct {
	BatchSize    int
	PollInterval time.Duration
}

// NewPoller creates a new poller.
func NewPoller(source ContentSource, analyzer *Analyzer, logger Logger, config PollerConfig) *Poller {
	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}

	return &Poller{
		source:       source,
		analyzer:     analyzer,
		logger:       logger,
		batchSize:    config.BatchSize,
		pollInterval: config.PollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start starts the poller loop in a goroutine.
func (p *Poller) Start(ctx context.Context) error {
	if p.running {
		return errors.New("poller is already running")
	}

	p.running = true
	p.logger.Info("Poller starting",
		"batch_size", p.batchSize,
		"poll_interval", p.pollInterval.String(),
	)

	go p.run(ctx)

	return nil
}

// Stop stops the poller.
func (p *Poller) Stop() {
	if !p.running {
		return
	}

	p.logger.Info("Poller stopping")
	close(p.stopChan)
	p.running = false
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	// Drain once at startup, then on every tick.
	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller context cancelled")
			return
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll drains one batch from the source, grouped and analyzed per
// project. A failing project does not block the others; its items stay
// pending and are retried on the next tick.
func (p *Poller) poll(ctx context.Context) {
	items, err := p.source.QueryPending(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("Failed to query pending content", "error", err)
		return
	}
	if len(items) == 0 {
		return
	}

	p.logger.Debug("Pending content found", "items", len(items))

	byProject := make(map[string][]*PendingItem)
	var order []string
	for _, item := range items {
		if _, seen := byProject[item.ProjectID]; !seen {
			order = append(order, item.ProjectID)
		}
		byProject[item.ProjectID] = append(byProject[item.ProjectID], item)
	}

	for _, projectID := range order {
		batch := byProject[projectID]

		inputs := make([]domain.ContentInput, len(batch))
		ids := make([]int64, len(batch))
		for i, item := range batch {
			inputs[i] = item.Input
			ids[i] = item.ID
		}

		if _, err := p.analyzer.AnalyzeBatch(ctx, projectID, inputs, nil); err != nil {
			p.logger.Error("Analysis failed for project",
				"project_id", projectID,
				"items", len(batch),
				"error", err,
			)
			continue
		}

		if err := p.source.MarkClassified(ctx, ids); err != nil {
			p.logger.Error("Failed to mark content classified",
				"project_id", projectID,
				"error", err,
			)
		}
	}
}
