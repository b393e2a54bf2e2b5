package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/robo/internal/model"
)

func TestBuildPromptEmbedsEveryField(t *testing.T) {
	in := model.BusinessInput{
		BusinessName:     "Verde Vertical Farms",
		Industry:         "AgTech",
		Description:      "Hydroponic towers",
		TargetMarket:     "Restaurants",
		ProductsServices: "Greens",
		USP:              "Harvest-day freshness",
		FundingRequest:   "$750,000",
		TeamExperience:   "PhD in Hydroponics",
		VisionMission:    "Urban food security",
	}
	p, err := BuildPrompt(context.Background(), in)
	require.NoError(t, err)

	for _, want := range []string{
		"Business Name: Verde Vertical Farms",
		"Industry: AgTech",
		"Description: Hydroponic towers",
		"Target Market: Restaurants",
		"Key Products/Services: Greens",
		"Unique Selling Proposition (USP): Harvest-day freshness",
		"Funding Request: $750,000",
		"Team Experience: PhD in Hydroponics",
		"Vision/Mission: Urban food security",
		"1. Executive Summary",
		"8. Financial Plan (Projections & Requirements)",
	} {
		assert.Contains(t, p, want)
	}
	assert.NotContains(t, p, notProvided)
}

func TestBuildPromptOutlineFollowsCanonicalSections(t *testing.T) {
	p, err := BuildPrompt(context.Background(), model.BusinessInput{BusinessName: "Acme"})
	require.NoError(t, err)

	last := -1
	for i, title := range model.CanonicalSections {
		at := strings.Index(p, fmt.Sprintf("%d. %s", i+1, title))
		require.GreaterOrEqual(t, at, 0, "missing %q", title)
		assert.Greater(t, at, last, "%q out of order", title)
		last = at
	}
	assert.NotContains(t, p, fmt.Sprintf("%d. ", len(model.CanonicalSections)+1))
	for title := range sectionDetail {
		assert.Contains(t, model.CanonicalSections, title)
	}
}

func TestBuildPromptMarksMissingOptionals(t *testing.T) {
	p, err := BuildPrompt(context.Background(), acme())
	require.NoError(t, err)
	assert.Contains(t, p, "Funding Request: N/A")
	assert.Contains(t, p, "Team Experience: N/A")
	assert.Contains(t, p, "Vision/Mission: N/A")
}

func TestBuildPromptKeepsBracesInValues(t *testing.T) {
	in := acme()
	in.Description = "uses {curly} braces"
	p, err := BuildPrompt(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, p, "Description: uses {curly} braces")
}

func TestSystemInstruction(t *testing.T) {
	s := SystemInstruction()
	assert.True(t, strings.HasPrefix(s, "You are an elite business consultant"))
	assert.Contains(t, s, "Markdown")
}

func TestDecodePlanKeepsOrder(t *testing.T) {
	plan, err := DecodePlan(`[{"title":"B","content":"2"},{"title":"A","content":"1"}]`)
	require.NoError(t, err)
	assert.Equal(t, model.BusinessPlan{{Title: "B", Content: "2"}, {Title: "A", Content: "1"}}, plan)
}

func TestDecodePlanEmptyArray(t *testing.T) {
	plan, err := DecodePlan(`[]`)
	require.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Empty(t, plan)
}

func TestDecodePlanIgnoresExtraFields(t *testing.T) {
	plan, err := DecodePlan(`[{"title":"A","content":"1","extra":true}]`)
	require.NoError(t, err)
	assert.Len(t, plan, 1)
}
