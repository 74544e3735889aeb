// Package insights generates the optional AI financial tip by passing
// dashboard data through the Gemini API. The call is best-effort
// presentation: every failure path degrades to a fixed friendly string
// rather than an error.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used for tips.
const DefaultModelName = "gemini-2.5-flash"

const (
	missingKeyMessage  = "API Key is missing. Set FITY_GEMINI_API_KEY to use AI features."
	unavailableMessage = "AI service is temporarily unavailable."
	emptyMessage       = "Unable to generate insights at this time."
)

// Generator produces financial tips for one user.
type Generator struct {
	apiKey   string
	model    string
	userName string
}

// NewGenerator creates a Generator. An empty apiKey is allowed; Tip then
// returns a hint about configuring one.
func NewGenerator(apiKey, userName string) *Generator {
	if userName == "" {
		userName = "there"
	}
	return &Generator{apiKey: apiKey, model: DefaultModelName, userName: userName}
}

// Tip asks Gemini for a short insight over the given dashboard data. The
// arguments are serialized as-is into the prompt; any JSON-marshalable
// shapes work.
func (g *Generator) Tip(ctx context.Context, stats, transactions, goals any) string {
	if g.apiKey == "" {
		return missingKeyMessage
	}

	prompt := g.buildPrompt(stats, transactions, goals)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		slog.Debug("Failed to create Gemini client", "error", err)
		return unavailableMessage
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		slog.Debug("Gemini request failed", "error", err)
		return unavailableMessage
	}

	text := resp.Text()
	if text == "" {
		return emptyMessage
	}
	return text
}

func (g *Generator) buildPrompt(stats, transactions, goals any) string {
	return fmt.Sprintf(`Analyze the following financial dashboard data and provide a concise (max 3 sentences) helpful insight or tip for the user, %s.

Stats: %s
Recent Transactions: %s
Goals: %s

Tone: Professional but friendly. Focus on saving opportunities or praising progress.`,
		g.userName, toJSON(stats), toJSON(transactions), toJSON(goals))
}

func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
