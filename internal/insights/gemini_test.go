package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipWithoutAPIKey(t *testing.T) {
	g := NewGenerator("", "Alice")
	got := g.Tip(context.Background(), nil, nil, nil)
	assert.Equal(t, missingKeyMessage, got)
}

func TestNewGeneratorDefaultsUserName(t *testing.T) {
	g := NewGenerator("key", "")
	assert.Equal(t, "there", g.userName)
	assert.Equal(t, DefaultModelName, g.model)
}

func TestBuildPrompt(t *testing.T) {
	g := NewGenerator("key", "Alice")

	stats := map[string]float64{"balance": 1200.50}
	transactions := []map[string]any{{"name": "Netflix", "amount": -15.99}}
	goals := []map[string]any{{"name": "Emergency fund"}}

	prompt := g.buildPrompt(stats, transactions, goals)

	assert.Contains(t, prompt, "Alice")
	assert.Contains(t, prompt, "max 3 sentences")
	assert.Contains(t, prompt, `"balance":1200.5`)
	assert.Contains(t, prompt, "Netflix")
	assert.Contains(t, prompt, "Emergency fund")
	assert.Contains(t, prompt, "Professional but friendly")
}

func TestToJSONUnmarshalable(t *testing.T) {
	assert.Equal(t, "null", toJSON(make(chan int)))
}
