// Package generator turns a business description into a BusinessPlan with a
// single call to a generative text service.
package generator

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Makepad-fr/robo/internal/model"
)

// CredentialFunc returns the API key at call time. Empty means absent.
type CredentialFunc func() string

// Client is the plan generation client. Calls are independent of each other.
type Client struct {
	credential CredentialFunc
	factory    ServiceFactory
	log        *zap.Logger
}

// NewClient wires a client. log may be nil.
func NewClient(credential CredentialFunc, factory ServiceFactory, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{credential: credential, factory: factory, log: log}
}

// Generate produces a plan for in or fails with an *Error.
func (c *Client) Generate(ctx context.Context, in model.BusinessInput) (model.BusinessPlan, error) {
	apiKey := ""
	if c.credential != nil {
		apiKey = strings.TrimSpace(c.credential())
	}
	if apiKey == "" {
		c.log.Warn("generate: no credential configured")
		return nil, newError(CodeConfiguration, msgMissingCredential, nil)
	}

	prompt, err := BuildPrompt(ctx, in)
	if err != nil {
		return nil, newError(CodeService, msgService, err)
	}

	svc, err := c.factory(ctx, apiKey)
	if err != nil {
		return nil, newError(CodeConfiguration, "Could not configure the AI client: "+err.Error(), err)
	}

	start := time.Now()
	raw, err := svc.Generate(ctx, prompt, PlanSchema())
	log := c.log.With(zap.String("business", in.BusinessName), zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		log.Error("generate: service call failed", zap.Error(err))
		return nil, newError(CodeService, msgService, err)
	}
	if strings.TrimSpace(raw) == "" {
		log.Error("generate: empty response")
		return nil, newError(CodeEmptyResponse, msgEmpty, nil)
	}

	plan, err := DecodePlan(raw)
	if err != nil {
		log.Error("generate: response rejected", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil, err
	}
	log.Info("generate: plan ready", zap.Int("sections", len(plan)))
	return plan, nil
}
