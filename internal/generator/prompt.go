package generator

import (
	"context"
	"embed"
	"fmt"
	"strings"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/Makepad-fr/robo/internal/model"
)

//go:embed templates/*.txt
var templatesFS embed.FS

// notProvided stands in for optional fields the user left empty.
const notProvided = "N/A"

// sectionDetail is appended to a canonical title in the requested outline.
var sectionDetail = map[string]string{
	"Company Overview":    " (Mission, Vision, Legal Structure)",
	"Market Analysis":     " (Industry Overview, Target Audience, Competitors)",
	"Products & Services": " Detail",
	"Financial Plan":      " (Projections & Requirements)",
}

// SystemInstruction returns the consultant persona sent as the system message.
func SystemInstruction() string {
	return mustTemplate("templates/system.txt")
}

// BuildPrompt renders the user prompt for in.
func BuildPrompt(ctx context.Context, in model.BusinessInput) (string, error) {
	tpl := einoprompt.FromMessages(schema.FString, schema.UserMessage(mustTemplate("templates/plan_request.txt")))
	msgs, err := tpl.Format(ctx, promptVars(in))
	if err != nil {
		return "", fmt.Errorf("format prompt: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("format prompt: no message produced")
	}
	return msgs[0].Content, nil
}

func promptVars(in model.BusinessInput) map[string]any {
	sections := make([]string, len(model.CanonicalSections))
	for i, title := range model.CanonicalSections {
		sections[i] = fmt.Sprintf("%d. %s%s", i+1, title, sectionDetail[title])
	}
	return map[string]any{
		"business_name":     in.BusinessName,
		"industry":          in.Industry,
		"description":       in.Description,
		"target_market":     in.TargetMarket,
		"products_services": in.ProductsServices,
		"usp":               in.USP,
		"funding_request":   orNotProvided(in.FundingRequest),
		"team_experience":   orNotProvided(in.TeamExperience),
		"vision_mission":    orNotProvided(in.VisionMission),
		"sections":          strings.Join(sections, "\n"),
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

func mustTemplate(path string) string {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("generator: missing embedded template %s: %v", path, err))
	}
	return strings.TrimSpace(string(b))
}
