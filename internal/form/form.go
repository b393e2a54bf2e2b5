// Package form describes the business questionnaire: which fields exist,
// which are required, and the example businesses used by "inspire me".
package form

import (
	"math/rand/v2"
	"strings"

	"github.com/Makepad-fr/robo/internal/model"
)

// Field describes one input of the questionnaire.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
	Multiline   bool
	get         func(*model.BusinessInput) *string
}

// Ptr returns a pointer to the field's value inside in.
func (f Field) Ptr(in *model.BusinessInput) *string { return f.get(in) }

// Value reads the field from in.
func (f Field) Value(in model.BusinessInput) string { return *f.get(&in) }

// Fields lists every input in display order.
var Fields = []Field{
	{Key: "businessName", Label: "Business Name", Placeholder: "e.g. Acme Corp", Required: true,
		get: func(in *model.BusinessInput) *string { return &in.BusinessName }},
	{Key: "industry", Label: "Industry", Placeholder: "e.g. SaaS, Retail, Healthcare", Required: true,
		get: func(in *model.BusinessInput) *string { return &in.Industry }},
	{Key: "description", Label: "Business Description", Placeholder: "What does your business do?", Required: true, Multiline: true,
		get: func(in *model.BusinessInput) *string { return &in.Description }},
	{Key: "targetMarket", Label: "Target Market", Placeholder: "Who are your customers?", Required: true, Multiline: true,
		get: func(in *model.BusinessInput) *string { return &in.TargetMarket }},
	{Key: "productsServices", Label: "Products / Services", Placeholder: "What do you sell?", Required: true, Multiline: true,
		get: func(in *model.BusinessInput) *string { return &in.ProductsServices }},
	{Key: "usp", Label: "Unique Selling Proposition", Placeholder: "Why will customers choose you?", Required: true, Multiline: true,
		get: func(in *model.BusinessInput) *string { return &in.USP }},
	{Key: "fundingRequest", Label: "Funding Request (optional)", Placeholder: "e.g. $500,000 for expansion",
		get: func(in *model.BusinessInput) *string { return &in.FundingRequest }},
	{Key: "teamExperience", Label: "Team Experience (optional)", Placeholder: "Key people and their background", Multiline: true,
		get: func(in *model.BusinessInput) *string { return &in.TeamExperience }},
	{Key: "visionMission", Label: "Vision / Mission (optional)", Placeholder: "Long-term goal", Multiline: true,
		get: func(in *model.BusinessInput) *string { return &in.VisionMission }},
}

// Missing returns the labels of required fields that are still blank.
func Missing(in model.BusinessInput) []string {
	var out []string
	for _, f := range Fields {
		if f.Required && strings.TrimSpace(f.Value(in)) == "" {
			out = append(out, f.Label)
		}
	}
	return out
}

// Ready reports whether in can be submitted.
func Ready(in model.BusinessInput) bool { return len(Missing(in)) == 0 }

// Source picks an index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Inspire picks one of the Examples. The returned value is a copy.
func Inspire(src Source) model.BusinessInput {
	return Examples[src.IntN(len(Examples))]
}
