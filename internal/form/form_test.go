package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/robo/internal/model"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestMissingListsRequiredOnly(t *testing.T) {
	missing := Missing(model.BusinessInput{})
	assert.Equal(t, []string{
		"Business Name",
		"Industry",
		"Business Description",
		"Target Market",
		"Products / Services",
		"Unique Selling Proposition",
	}, missing)
}

func TestReady(t *testing.T) {
	in := model.BusinessInput{
		BusinessName: "Acme", Industry: "Retail", Description: "X",
		TargetMarket: "Y", ProductsServices: "Z", USP: "W",
	}
	assert.True(t, Ready(in))

	in.USP = "   "
	assert.False(t, Ready(in))
	assert.Equal(t, []string{"Unique Selling Proposition"}, Missing(in))
}

func TestFieldPointersCoverEveryField(t *testing.T) {
	var in model.BusinessInput
	for _, f := range Fields {
		*f.Ptr(&in) = f.Key
	}
	assert.Equal(t, model.BusinessInput{
		BusinessName:     "businessName",
		Industry:         "industry",
		Description:      "description",
		TargetMarket:     "targetMarket",
		ProductsServices: "productsServices",
		USP:              "usp",
		FundingRequest:   "fundingRequest",
		TeamExperience:   "teamExperience",
		VisionMission:    "visionMission",
	}, in)
	for _, f := range Fields {
		assert.Equal(t, f.Key, f.Value(in))
	}
}

func TestExamplesAreComplete(t *testing.T) {
	require.Len(t, Examples, 4)
	for _, ex := range Examples {
		assert.True(t, Ready(ex), ex.BusinessName)
		assert.NotEmpty(t, ex.FundingRequest)
		assert.NotEmpty(t, ex.TeamExperience)
		assert.NotEmpty(t, ex.VisionMission)
	}
}

func TestInspireUsesSource(t *testing.T) {
	for i := range Examples {
		assert.Equal(t, Examples[i], Inspire(fixedSource(i)))
	}
}

func TestInspireSeededIsReproducible(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, Inspire(a), Inspire(b))
	}
}

func TestInspireReturnsCopy(t *testing.T) {
	got := Inspire(fixedSource(0))
	got.BusinessName = "changed"
	assert.Equal(t, "Verde Vertical Farms", Examples[0].BusinessName)
}
