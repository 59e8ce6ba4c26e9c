package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateProvider_Search(t *testing.T) {
	provider := NewTemplateProvider()

	result, err := provider.Search(context.Background(), "fitness", 3)

	require.NoError(t, err)
	assert.Len(t, result.PainPoints, 3)
	assert.Len(t, result.TrendingIdeas, 3)
	assert.Len(t, result.ContentIdeas, 3)

	// the query is woven into every category
	assert.Contains(t, result.PainPoints[0].Content, "fitness")
	assert.Contains(t, result.TrendingIdeas[0].Content, "fitness")
	assert.Contains(t, result.ContentIdeas[0].Title, "fitness")

	// pain points carry engagement, trending ideas carry trend scores
	assert.Equal(t, 342, result.PainPoints[0].Engagement)
	assert.Equal(t, 95, result.TrendingIdeas[0].TrendScore)
	assert.Zero(t, result.PainPoints[0].TrendScore)
}

func TestTemplateProvider_Search_LimitCapsCategories(t *testing.T) {
	provider := NewTemplateProvider()

	result, err := provider.Search(context.Background(), "cooking", 1)

	require.NoError(t, err)
	assert.Len(t, result.PainPoints, 1)
	assert.Len(t, result.TrendingIdeas, 1)
	assert.Len(t, result.ContentIdeas, 1)
}

func TestTemplateProvider_Search_UnlimitedResults(t *testing.T) {
	provider := NewTemplateProvider()

	for _, limit := range []int{0, -1, 100} {
		result, err := provider.Search(context.Background(), "gaming", limit)

		require.NoError(t, err)
		assert.Len(t, result.PainPoints, 3, "limit %d", limit)
		assert.Len(t, result.TrendingIdeas, 3, "limit %d", limit)
		assert.Len(t, result.ContentIdeas, 3, "limit %d", limit)
	}
}

func TestTemplateProvider_Search_UniqueIDs(t *testing.T) {
	provider := NewTemplateProvider()

	result, err := provider.Search(context.Background(), "travel", 3)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, item := range result.PainPoints {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	for _, item := range result.TrendingIdeas {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestTemplateProvider_GenerateScript(t *testing.T) {
	provider := NewTemplateProvider()

	script, err := provider.GenerateScript(context.Background(), "productivity")

	require.NoError(t, err)
	assert.NotEmpty(t, script.ID)
	assert.Contains(t, script.Title, "productivity")
	assert.Contains(t, script.Hook, "productivity")
	assert.Len(t, script.Outline, 4)
	assert.NotEmpty(t, script.CallToAction)
}
