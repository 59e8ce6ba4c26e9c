package insights

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Provider turns a free-text query into categorized insights. The
// template implementation below stands in for a real aggregation
// backend; swapping one in only requires satisfying this interface.
type Provider interface {
	Search(ctx context.Context, query string, limit int) (*SearchResult, error)
	GenerateScript(ctx context.Context, query string) (*Script, error)
}

// TemplateProvider generates deterministic templated insights
type TemplateProvider struct{}

// creates the templated insight provider
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// returns templated pain points, trending ideas and content ideas for
// the query; limit caps each category (the plan's results-per-category)
func (p *TemplateProvider) Search(_ context.Context, query string, limit int) (*SearchResult, error) {
	painPoints := []InsightItem{
		{
			ID:         uuid.NewString(),
			Platform:   "Reddit",
			Content:    fmt.Sprintf("Finding consistent %s content ideas is exhausting", query),
			Engagement: 342,
			Source:     "r/ContentCreation",
		},
		{
			ID:         uuid.NewString(),
			Platform:   "X",
			Content:    fmt.Sprintf("Struggling to understand %s audience preferences", query),
			Engagement: 156,
			Source:     "@CreatorTips",
		},
		{
			ID:         uuid.NewString(),
			Platform:   "YouTube",
			Content:    fmt.Sprintf("Low engagement on %s content despite regular posting", query),
			Engagement: 89,
			Source:     "Creator Community",
		},
	}

	trendingIdeas := []InsightItem{
		{
			ID:         uuid.NewString(),
			Platform:   "Reddit",
			Content:    fmt.Sprintf("AI-powered %s analysis tools", query),
			TrendScore: 95,
			Source:     "r/Marketing",
		},
		{
			ID:         uuid.NewString(),
			Platform:   "X",
			Content:    fmt.Sprintf("Multi-platform %s audience insights", query),
			TrendScore: 87,
			Source:     "@TechTrends",
		},
		{
			ID:         uuid.NewString(),
			Platform:   "YouTube",
			Content:    fmt.Sprintf("Real-time %s social listening", query),
			TrendScore: 82,
			Source:     "Marketing Insights",
		},
	}

	contentIdeas := []ContentIdea{
		{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("How to validate %s ideas before creating", query),
			Description: "A step-by-step guide based on audience discussions",
			Platforms:   []string{"Reddit", "X", "YouTube"},
		},
		{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("Understanding your %s audience pain points", query),
			Description: "Tools and techniques for audience research",
			Platforms:   []string{"Reddit", "X"},
		},
		{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("Creating %s content that converts", query),
			Description: "Data-driven content strategy",
			Platforms:   []string{"YouTube", "X"},
		},
	}

	return &SearchResult{
		PainPoints:    capItems(painPoints, limit),
		TrendingIdeas: capItems(trendingIdeas, limit),
		ContentIdeas:  capIdeas(contentIdeas, limit),
	}, nil
}

// returns a templated content script for the query
func (p *TemplateProvider) GenerateScript(_ context.Context, query string) (*Script, error) {
	return &Script{
		ID:    uuid.NewString(),
		Title: fmt.Sprintf("The %s strategy nobody talks about", query),
		Hook:  fmt.Sprintf("Most creators get %s completely wrong. Here is what the data says instead.", query),
		Outline: []string{
			fmt.Sprintf("Open with the most common %s complaint from real audience threads", query),
			fmt.Sprintf("Show three %s trends gaining traction this month", query),
			"Walk through one concrete example end to end",
			"Close with a repeatable checklist viewers can apply today",
		},
		CallToAction: fmt.Sprintf("Comment with your biggest %s challenge and subscribe for the follow-up breakdown.", query),
	}, nil
}

// caps a category at the plan's results-per-category; a zero or
// negative limit means uncapped
func capItems(items []InsightItem, limit int) []InsightItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}

	return items
}

func capIdeas(ideas []ContentIdea, limit int) []ContentIdea {
	if limit > 0 && len(ideas) > limit {
		return ideas[:limit]
	}

	return ideas
}
