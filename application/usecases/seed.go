package usecases

import (
	"context"
	"fmt"

	"insights-backend/application/ports"
	"insights-backend/application/services"
	"insights-backend/domain/records"

	"go.uber.org/zap"
)

const seedCreator = "seed-generator"

// SeedItem is one sample content item the generator expands into a row
// in each of the five entity tables
type SeedItem struct {
	Title           string
	UserText        string
	URL             string
	InsightText     string
	ImplicationText string
	SummaryText     string
	Confidence      float64
	Relevance       float64
}

// SeedError records a per-item failure without aborting the batch
type SeedError struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SeedReport summarizes a seed run. Per-item failures land in Errors;
// the run itself never fails.
type SeedReport struct {
	ItemsProcessed int            `json:"items_processed"`
	Created        map[string]int `json:"created"`
	Errors         []SeedError    `json:"errors"`
}

// SeedGenerator walks a list of sample items and creates one record per
// entity per item, strictly one item at a time. An item's failure is
// logged and recorded, and processing continues; rows already created
// for a failed item are left in place.
type SeedGenerator struct {
	content      *services.ContentService
	urls         *services.URLMappingService
	insights     *services.InsightService
	implications *services.ImplicationService
	summaries    *services.SummaryService
	events       ports.EventPublisher
	metrics      ports.MetricsEmitter
	logger       *zap.Logger
}

// NewSeedGenerator creates a seed generator; events and metrics may be nil
func NewSeedGenerator(
	content *services.ContentService,
	urls *services.URLMappingService,
	insights *services.InsightService,
	implications *services.ImplicationService,
	summaries *services.SummaryService,
	events ports.EventPublisher,
	metrics ports.MetricsEmitter,
	logger *zap.Logger,
) *SeedGenerator {
	return &SeedGenerator{
		content:      content,
		urls:         urls,
		insights:     insights,
		implications: implications,
		summaries:    summaries,
		events:       events,
		metrics:      metrics,
		logger:       logger,
	}
}

// Run seeds every item and returns the summary report
func (g *SeedGenerator) Run(ctx context.Context, items []SeedItem) *SeedReport {
	report := &SeedReport{
		Created: map[string]int{},
		Errors:  []SeedError{},
	}

	for i, item := range items {
		if err := g.seedItem(ctx, item, report); err != nil {
			g.logger.Warn("Seed item failed",
				zap.Int("index", i),
				zap.String("title", item.Title),
				zap.Error(err),
			)
			report.Errors = append(report.Errors, SeedError{
				Index:   i,
				Title:   item.Title,
				Message: err.Error(),
			})
			continue
		}
		report.ItemsProcessed++
	}

	g.logger.Info("Seed run completed",
		zap.Int("items", len(items)),
		zap.Int("processed", report.ItemsProcessed),
		zap.Int("errors", len(report.Errors)),
	)

	if g.metrics != nil {
		if err := g.metrics.Count(ctx, "SeedItemsProcessed", float64(report.ItemsProcessed), nil); err != nil {
			g.logger.Debug("Failed to emit seed metric", zap.Error(err))
		}
	}
	if g.events != nil {
		event := ports.AuditEvent{
			DetailType: "SeedCompleted",
			Detail: map[string]interface{}{
				"items_processed": report.ItemsProcessed,
				"errors":          len(report.Errors),
			},
		}
		if err := g.events.Publish(ctx, event); err != nil {
			g.logger.Warn("Failed to publish seed event", zap.Error(err))
		}
	}

	return report
}

func (g *SeedGenerator) seedItem(ctx context.Context, item SeedItem, report *SeedReport) error {
	content, err := g.content.Create(ctx, records.NewContentParams{
		Title:     item.Title,
		UserText:  item.UserText,
		SourceURL: item.URL,
		CreatedBy: seedCreator,
	})
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}
	report.Created[string(records.EntityContent)]++

	mapping, err := g.urls.Create(ctx, records.NewURLMappingParams{
		ContentID: content.ID,
		URL:       item.URL,
		CreatedBy: seedCreator,
	})
	if err != nil {
		return fmt.Errorf("url mapping: %w", err)
	}
	report.Created[string(records.EntityURLMapping)]++

	if _, err := g.insights.Create(ctx, records.NewInsightParams{
		ContentID:       content.ID,
		URLID:           mapping.ID,
		Text:            item.InsightText,
		ConfidenceScore: item.Confidence,
		Version:         1,
		IsCanonical:     true,
		PreferredChoice: true,
		CreatedBy:       seedCreator,
	}); err != nil {
		return fmt.Errorf("insight: %w", err)
	}
	report.Created[string(records.EntityInsight)]++

	if _, err := g.implications.Create(ctx, records.NewImplicationParams{
		ContentID:       content.ID,
		URLID:           mapping.ID,
		Text:            item.ImplicationText,
		RelevanceScore:  item.Relevance,
		Version:         1,
		IsCanonical:     true,
		PreferredChoice: true,
		CreatedBy:       seedCreator,
	}); err != nil {
		return fmt.Errorf("implication: %w", err)
	}
	report.Created[string(records.EntityImplication)]++

	if _, err := g.summaries.Create(ctx, records.NewSummaryParams{
		ContentID:       content.ID,
		URLID:           mapping.ID,
		Text:            item.SummaryText,
		Version:         1,
		IsCanonical:     true,
		PreferredChoice: true,
		CreatedBy:       seedCreator,
	}); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	report.Created[string(records.EntitySummary)]++

	return nil
}

// DefaultSeedItems is the fixed sample set used by the admin seed
// endpoint and the seed CLI
func DefaultSeedItems() []SeedItem {
	return []SeedItem{
		{
			Title:           "Remote work productivity study",
			UserText:        "A longitudinal study of 1,200 knowledge workers found sustained productivity gains after switching to hybrid schedules.",
			URL:             "https://example.com/research/remote-work-productivity",
			InsightText:     "Hybrid schedules correlate with a 13% productivity gain that persists beyond the first year.",
			ImplicationText: "Organizations mandating full-time office return risk losing measurable output.",
			SummaryText:     "Hybrid work sustains productivity gains across a large worker sample.",
			Confidence:      0.86,
			Relevance:       0.81,
		},
		{
			Title:           "Battery recycling breakthrough",
			UserText:        "Researchers demonstrated a low-temperature process recovering 98% of lithium from spent EV batteries.",
			URL:             "https://example.com/energy/battery-recycling",
			InsightText:     "Low-temperature lithium recovery makes closed-loop battery supply chains economically viable.",
			ImplicationText: "Raw lithium demand forecasts for 2030 may be overstated by a third.",
			SummaryText:     "A new recycling process recovers nearly all lithium from used EV batteries.",
			Confidence:      0.78,
			Relevance:       0.84,
		},
		{
			Title:           "Regional bank lending contraction",
			UserText:        "Quarterly filings show regional banks cut commercial real estate lending by 22% year over year.",
			URL:             "https://example.com/finance/regional-bank-lending",
			InsightText:     "Regional banks are retreating from commercial real estate at the fastest pace since 2009.",
			ImplicationText: "Mid-market developers will face refinancing gaps concentrated in 2026 maturities.",
			SummaryText:     "Regional bank CRE lending contracted sharply over the past year.",
			Confidence:      0.9,
			Relevance:       0.88,
		},
		{
			Title:           "Crop yield forecasting with satellite data",
			UserText:        "A new model combining radar and optical satellite imagery predicts wheat yields six weeks before harvest.",
			URL:             "https://example.com/agtech/yield-forecasting",
			InsightText:     "Multi-sensor satellite fusion halves the error of traditional crop yield forecasts.",
			ImplicationText: "Commodity traders gain a six-week information edge over survey-based estimates.",
			SummaryText:     "Satellite data fusion enables accurate early wheat yield prediction.",
			Confidence:      0.72,
			Relevance:       0.7,
		},
		{
			Title:           "Hospital staffing algorithm audit",
			UserText:        "An audit of a widely deployed nurse scheduling algorithm found systematic understaffing of night shifts.",
			URL:             "https://example.com/health/staffing-audit",
			InsightText:     "Optimization objectives tuned for cost quietly shifted risk onto night-shift patient loads.",
			ImplicationText: "Hospitals using vendor scheduling tools need independent audits of shift-level outcomes.",
			SummaryText:     "A scheduling algorithm audit revealed hidden night-shift understaffing.",
			Confidence:      0.83,
			Relevance:       0.79,
		},
	}
}
