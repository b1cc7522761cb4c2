package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"salesdash/internal/aggregate"
	"salesdash/internal/logger"
)

const systemPrompt = `You are a sales analyst. Given aggregate sales figures,
write a short commentary in markdown: two or three paragraphs covering the
overall level of sales, the daily trend, and how concentrated sales are in
the leading categories. Be factual; do not invent numbers.`

// CommentaryClient generates a markdown commentary for a sales summary
type CommentaryClient struct {
	client *openai.Client
	model  string
}

// NewCommentaryClient creates an OpenAI-backed commentary client. Returns
// nil when apiKey is empty; callers treat a nil client as "commentary off".
func NewCommentaryClient(apiKey, model string) *CommentaryClient {
	if apiKey == "" {
		return nil
	}
	return &CommentaryClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Commentary asks the model to comment on the summary and category ranking
func (c *CommentaryClient) Commentary(ctx context.Context, summary aggregate.Summary, totals []aggregate.CategoryTotal) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("commentary client not configured")
	}

	prompt := buildPrompt(summary, totals)
	logger.Debugf("Requesting sales commentary (%d prompt chars)", len(prompt))

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("commentary generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("commentary generation returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// buildPrompt lays the aggregates out as a plain text block for the model
func buildPrompt(summary aggregate.Summary, totals []aggregate.CategoryTotal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total sales: %.0f\n", summary.Total)
	fmt.Fprintf(&b, "Daily average: %.2f\n", summary.DailyAverage)
	fmt.Fprintf(&b, "Distinct days: %d\n", summary.Days)
	fmt.Fprintf(&b, "Distinct categories: %d\n\n", summary.Categories)

	b.WriteString("Sales by category, highest first:\n")
	for _, ct := range totals {
		fmt.Fprintf(&b, "- %s: %.0f\n", ct.Category, ct.Total)
	}

	return b.String()
}
