package model

import "time"

// BusinessInput is what the user tells us about the business.
// Field names on the wire match the stored history format.
type BusinessInput struct {
	BusinessName     string `json:"businessName" yaml:"businessName"`
	Industry         string `json:"industry" yaml:"industry"`
	Description      string `json:"description" yaml:"description"`
	TargetMarket     string `json:"targetMarket" yaml:"targetMarket"`
	ProductsServices string `json:"productsServices" yaml:"productsServices"`
	USP              string `json:"usp" yaml:"usp"`
	FundingRequest   string `json:"fundingRequest" yaml:"fundingRequest"`
	TeamExperience   string `json:"teamExperience" yaml:"teamExperience"`
	VisionMission    string `json:"visionMission" yaml:"visionMission"`
}

// PlanSection is one titled block of generated content. Content is Markdown.
type PlanSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BusinessPlan is ordered; the order is the table of contents.
type BusinessPlan []PlanSection

// SavedPlan is a history entry. Never mutated once created.
type SavedPlan struct {
	ID           string       `json:"id"`
	CreatedAt    int64        `json:"createdAt"` // unix millis
	BusinessName string       `json:"businessName"`
	Plan         BusinessPlan `json:"plan"`
}

// CreatedTime converts the stored millisecond timestamp.
func (s SavedPlan) CreatedTime() time.Time {
	return time.UnixMilli(s.CreatedAt)
}

// CanonicalSections is the outline the generation prompt asks for. The
// service decides what it actually returns; nothing checks the titles
// against this list.
var CanonicalSections = []string{
	"Executive Summary",
	"Company Overview",
	"Market Analysis",
	"Products & Services",
	"Marketing & Sales Strategy",
	"Operational Plan",
	"Management Team",
	"Financial Plan",
}
