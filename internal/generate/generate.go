package generate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"insightmix/internal/core"

	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

const (
	// DefaultModel is the default Gemini model used for content generation.
	DefaultModel = "gemini-1.5-flash"
)

// Request is one content-generation hand-off: the ordered selected ids
// plus opaque hints. The generator resolves ids against the supplied
// cards; the scoring module never sees what comes back.
type Request struct {
	InsightIDs []string           // Ordered selected insight ids
	Cards      []core.InsightCard // Cards backing the ids, for prompt assembly
	Framework  string             // Opaque framework hint from the applied recipe, if any
	Template   string             // Opaque downstream template name, if any
}

// Result is the generated content and the model that produced it.
type Result struct {
	Content   string
	ModelUsed string
}

// Generator is the content-generation collaborator boundary. Failures are
// logged and swallowed by the caller; the selection state is never touched.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Client is a Gemini-backed Generator.
type Client struct {
	modelName string
	gClient   *genai.Client
}

// NewClient creates a Gemini client. The API key is looked up from the
// environment first (GEMINI_API_KEY, then GOOGLE_AI_API_KEY), falling back
// to the ai.gemini.api_key config value.
func NewClient(ctx context.Context, modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if apiKey = os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
			apiKey = viper.GetString("ai.gemini.api_key")
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY or ai.gemini.api_key in config")
	}

	if modelName == "" {
		modelName = viper.GetString("ai.gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	gClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		modelName: modelName,
		gClient:   gClient,
	}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.gClient.Close()
}

// ModelName returns the model this client generates with.
func (c *Client) ModelName() string {
	return c.modelName
}

// Generate hands the selected insights to Gemini and returns the content.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	if len(req.InsightIDs) == 0 {
		return nil, fmt.Errorf("cannot generate from an empty selection")
	}

	model := c.gClient.GenerativeModel(c.modelName)
	if temp := viper.GetFloat64("ai.gemini.temperature"); temp > 0 {
		model.SetTemperature(float32(temp))
	}
	if maxTokens := viper.GetInt32("ai.gemini.max_tokens"); maxTokens > 0 {
		model.SetMaxOutputTokens(maxTokens)
	}

	prompt := buildPrompt(req)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("content generation returned no candidates")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}

	return &Result{
		Content:   builder.String(),
		ModelUsed: c.modelName,
	}, nil
}

// buildPrompt assembles the generation prompt from the selected cards in
// selection order.
func buildPrompt(req Request) string {
	byID := make(map[string]core.InsightCard, len(req.Cards))
	for _, card := range req.Cards {
		byID[card.ID] = card
	}

	var builder strings.Builder
	builder.WriteString("Create marketing content grounded in the following business insights.\n")
	if req.Framework != "" {
		builder.WriteString(fmt.Sprintf("Framework: %s\n", req.Framework))
	}
	if req.Template != "" {
		builder.WriteString(fmt.Sprintf("Content format: %s\n", req.Template))
	}
	builder.WriteString("\nInsights:\n")

	for i, id := range req.InsightIDs {
		card, ok := byID[id]
		if !ok {
			continue
		}
		builder.WriteString(fmt.Sprintf("%d. [%s] %s", i+1, card.Type, card.Title))
		if card.Description != "" && card.Description != card.Title {
			builder.WriteString(": " + card.Description)
		}
		if card.ActionableInsight != "" {
			builder.WriteString(" (suggested angle: " + card.ActionableInsight + ")")
		}
		builder.WriteString("\n")
	}

	builder.WriteString("\nWrite content that weaves these insights together naturally. No meta-commentary.")
	return builder.String()
}
