package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Makepad-fr/robo/internal/model"
)

// PlanSchema is the output shape requested from the service: an array of
// {title, content} objects, both strings.
func PlanSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "The title of the section (e.g., Executive Summary)",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "The detailed content of the section in Markdown format.",
				},
			},
			"required": []any{"title", "content"},
		},
	}
}

// DecodePlan turns raw service output into a plan. The text must be JSON
// matching PlanSchema; anything else is a PARSE error.
func DecodePlan(raw string) (model.BusinessPlan, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newError(CodeEmptyResponse, msgEmpty, nil)
	}
	if !json.Valid([]byte(raw)) {
		return nil, newError(CodeParse, msgParse, fmt.Errorf("response is not valid JSON"))
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(PlanSchema()),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, newError(CodeParse, msgParse, fmt.Errorf("schema validation: %w", err))
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return nil, newError(CodeParse, msgParse, fmt.Errorf("unexpected shape: %s", strings.Join(reasons, "; ")))
	}

	var plan model.BusinessPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, newError(CodeParse, msgParse, fmt.Errorf("json unmarshal: %w", err))
	}
	if plan == nil {
		plan = model.BusinessPlan{}
	}
	return plan, nil
}
