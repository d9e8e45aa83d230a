package integration

import (
	"context"
	"testing"

	"insights-backend/application/ports"
	"insights-backend/application/services"
	"insights-backend/application/usecases"
	"insights-backend/domain/records"
	"insights-backend/infrastructure/persistence/memory"
	"insights-backend/infrastructure/persistence/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedRegenClient returns queued responses in order, then errors
type scriptedRegenClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedRegenClient) Regenerate(_ context.Context, _ ports.RegenerationRequest) (string, error) {
	i := c.calls
	c.calls++
	var text string
	var err error
	if i < len(c.responses) {
		text = c.responses[i]
	}
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return text, err
}

type pipelineFixture struct {
	store    *memory.Store
	contents *services.ContentService
	urls     *services.URLMappingService
	insights *services.InsightService
	qa       *services.QAService
	regen    *scriptedRegenClient
	seeder   *usecases.SeedGenerator
	workflow *usecases.InsightRegeneration
}

func setupPipeline(t *testing.T) *pipelineFixture {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewStore()

	contents := services.NewContentService(
		repository.New(store, "contents", records.ContentMapping, logger), logger)
	urls := services.NewURLMappingService(
		repository.New(store, "url_mappings", records.URLMappingMapping, logger), logger)
	insights := services.NewInsightService(
		repository.New(store, "insights", records.InsightMapping, logger), logger)
	implications := services.NewImplicationService(
		repository.New(store, "implications", records.ImplicationMapping, logger), logger)
	summaries := services.NewSummaryService(
		repository.New(store, "summaries", records.SummaryMapping, logger), logger)
	qa := services.NewQAService(
		repository.New(store, "qa", records.QAMapping, logger), logger)

	regen := &scriptedRegenClient{}
	seeder := usecases.NewSeedGenerator(contents, urls, insights, implications, summaries, nil, nil, logger)
	workflow := usecases.NewInsightRegeneration(insights, qa, regen, nil, nil, logger)

	return &pipelineFixture{
		store:    store,
		contents: contents,
		urls:     urls,
		insights: insights,
		qa:       qa,
		regen:    regen,
		seeder:   seeder,
		workflow: workflow,
	}
}

// TestSeedAndRegenerationPipeline seeds the sample data set and then
// drives the insight regeneration workflow against it end to end.
func TestSeedAndRegenerationPipeline(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	items := usecases.DefaultSeedItems()
	report := f.seeder.Run(ctx, items)
	require.Empty(t, report.Errors)
	require.Equal(t, len(items), report.ItemsProcessed)

	var contentID string

	t.Run("seeded rows are reachable through the services", func(t *testing.T) {
		assert.Equal(t, len(items), f.store.Count("contents"))
		assert.Equal(t, len(items), f.store.Count("url_mappings"))
		assert.Equal(t, len(items), f.store.Count("insights"))
		assert.Equal(t, len(items), f.store.Count("implications"))
		assert.Equal(t, len(items), f.store.Count("summaries"))

		mapping, err := f.urls.FindByNormalizedURL(ctx, items[0].URL)
		require.NoError(t, err)
		require.NotNil(t, mapping)
		contentID = mapping.ContentID

		content, err := f.contents.GetByID(ctx, contentID)
		require.NoError(t, err)
		assert.Equal(t, items[0].Title, content.Title)
	})

	t.Run("regeneration versions and demotes the seeded insight", func(t *testing.T) {
		require.NotEmpty(t, contentID)
		f.regen.responses = []string{"a sharper take on the study"}

		res, err := f.workflow.Regenerate(ctx, usecases.RegenerateParams{
			ContentID:    contentID,
			UserText:     items[0].UserText,
			QuestionText: "what changed since the first pass?",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, res.Version)
		assert.Equal(t, 1, res.PriorCount)
		assert.False(t, res.UsedFallback)
		assert.Equal(t, "a sharper take on the study", res.Record.Body)

		all, err := f.insights.ListByContentID(ctx, contentID, 0)
		require.NoError(t, err)
		require.Len(t, all, 2)
		for _, ins := range all {
			assert.Equal(t, ins.ID == res.Record.ID, ins.PreferredChoice)
		}

		require.NotNil(t, res.QA)
		audit, err := f.qa.ListByParentID(ctx, res.Record.ID, 0)
		require.NoError(t, err)
		require.Len(t, audit, 1)
		assert.Equal(t, "what changed since the first pass?", audit[0].Question)
	})

	t.Run("preferred choice can be moved back", func(t *testing.T) {
		require.NotEmpty(t, contentID)

		all, err := f.insights.ListByContentID(ctx, contentID, 0)
		require.NoError(t, err)
		require.Len(t, all, 2)

		var seeded records.Insight
		for _, ins := range all {
			if ins.Version == 1 {
				seeded = ins
			}
		}
		require.NotEmpty(t, seeded.ID)

		err = f.workflow.SetPreferredRecord(ctx, contentID, seeded.ID)
		require.NoError(t, err)

		all, err = f.insights.ListByContentID(ctx, contentID, 0)
		require.NoError(t, err)
		for _, ins := range all {
			assert.Equal(t, ins.ID == seeded.ID, ins.PreferredChoice)
		}
	})
}
