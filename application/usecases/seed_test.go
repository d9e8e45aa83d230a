package usecases

import (
	"context"
	"testing"

	"insights-backend/application/services"
	"insights-backend/domain/records"
	"insights-backend/infrastructure/persistence/memory"
	"insights-backend/infrastructure/persistence/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	contentTable     = "contents"
	urlMappingTable  = "url_mappings"
	implicationTable = "implications"
	summaryTable     = "summaries"
)

type seedFixture struct {
	store  *memory.Store
	seeder *SeedGenerator
}

func newSeedFixture(t *testing.T) *seedFixture {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewStore()

	contents := services.NewContentService(
		repository.New(store, contentTable, records.ContentMapping, logger), logger)
	urls := services.NewURLMappingService(
		repository.New(store, urlMappingTable, records.URLMappingMapping, logger), logger)
	insights := services.NewInsightService(
		repository.New(store, insightTable, records.InsightMapping, logger), logger)
	implications := services.NewImplicationService(
		repository.New(store, implicationTable, records.ImplicationMapping, logger), logger)
	summaries := services.NewSummaryService(
		repository.New(store, summaryTable, records.SummaryMapping, logger), logger)

	seeder := NewSeedGenerator(contents, urls, insights, implications, summaries, nil, nil, logger)
	return &seedFixture{store: store, seeder: seeder}
}

func sampleSeedItem(title, url string) SeedItem {
	return SeedItem{
		Title:           title,
		UserText:        "some source text",
		URL:             url,
		InsightText:     "an insight",
		ImplicationText: "an implication",
		SummaryText:     "a summary",
		Confidence:      0.8,
		Relevance:       0.7,
	}
}

func TestSeedRunAllItems(t *testing.T) {
	f := newSeedFixture(t)

	items := []SeedItem{
		sampleSeedItem("first", "https://example.com/a"),
		sampleSeedItem("second", "https://example.com/b"),
	}

	report := f.seeder.Run(context.Background(), items)

	assert.Equal(t, 2, report.ItemsProcessed)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 2, report.Created[string(records.EntityContent)])
	assert.Equal(t, 2, report.Created[string(records.EntityURLMapping)])
	assert.Equal(t, 2, report.Created[string(records.EntityInsight)])
	assert.Equal(t, 2, report.Created[string(records.EntityImplication)])
	assert.Equal(t, 2, report.Created[string(records.EntitySummary)])

	assert.Equal(t, 2, f.store.Count(contentTable))
	assert.Equal(t, 2, f.store.Count(summaryTable))
}

func TestSeedContinuesPastMalformedURL(t *testing.T) {
	f := newSeedFixture(t)

	items := []SeedItem{
		sampleSeedItem("good one", "https://example.com/a"),
		sampleSeedItem("bad url", "ftp://example.com/b"),
		sampleSeedItem("good two", "https://example.com/c"),
	}

	report := f.seeder.Run(context.Background(), items)

	assert.Equal(t, 2, report.ItemsProcessed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Errors[0].Index)
	assert.Equal(t, "bad url", report.Errors[0].Title)

	// The failed item's content row was created before the url mapping
	// failed and is deliberately left in place.
	assert.Equal(t, 3, f.store.Count(contentTable))
	assert.Equal(t, 2, f.store.Count(urlMappingTable))
	assert.Equal(t, 2, f.store.Count(insightTable))
	assert.Equal(t, 2, f.store.Count(implicationTable))
	assert.Equal(t, 2, f.store.Count(summaryTable))
}

func TestSeedEmptyItems(t *testing.T) {
	f := newSeedFixture(t)

	report := f.seeder.Run(context.Background(), nil)

	assert.Equal(t, 0, report.ItemsProcessed)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 0, f.store.Count(contentTable))
}

func TestDefaultSeedItemsAreValid(t *testing.T) {
	f := newSeedFixture(t)

	items := DefaultSeedItems()
	require.NotEmpty(t, items)

	report := f.seeder.Run(context.Background(), items)
	assert.Equal(t, len(items), report.ItemsProcessed)
	assert.Empty(t, report.Errors)
}
