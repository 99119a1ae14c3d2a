package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

const explainModel = "gemini-3-flash-preview"

// Fallback strings shown in place of an explanation. The explanation
// channel always yields a human-readable string, never an error.
const (
	explainEmptyFallback = "Could not generate explanation."
	explainErrorFallback = "Error generating AI explanation. Please check your connection."
)

// ExplainService produces plain-English explanations of legal clauses via
// Gemini.
type ExplainService struct {
	geminiClient *genai.Client
}

// ExplainServiceOption is a functional option for ExplainService
type ExplainServiceOption func(*ExplainService)

// ExplainWithGeminiClient sets the Gemini client
func ExplainWithGeminiClient(client *genai.Client) ExplainServiceOption {
	return func(s *ExplainService) {
		s.geminiClient = client
	}
}

// NewExplainService creates a new explain service
func NewExplainService(opts ...ExplainServiceOption) *ExplainService {
	s := &ExplainService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExplainClauseRequest represents a request to explain one clause
type ExplainClauseRequest struct {
	Title   string
	Content string
}

// ExplainClauseResult represents the explanation outcome
type ExplainClauseResult struct {
	Explanation string
}

// ExplainClause asks the model to explain a clause for a non-lawyer. Any
// failure is collapsed locally into a static user-facing string; callers
// can treat this channel as always succeeding. The call is single-shot:
// retry is left to the user re-invoking it.
func (s *ExplainService) ExplainClause(ctx context.Context, req ExplainClauseRequest) *ExplainClauseResult {
	if s.geminiClient == nil {
		return &ExplainClauseResult{Explanation: explainErrorFallback}
	}

	prompt := fmt.Sprintf(`Explain this legal clause titled "%s" in simple, plain English for a non-lawyer.
Help them understand why it matters and what the potential risks or benefits are.

Clause Content:
%s

Keep the explanation concise and professional.`, req.Title, req.Content)

	model := s.geminiClient.GenerativeModel(explainModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini error explaining clause %q: %v", req.Title, err)
		return &ExplainClauseResult{Explanation: explainErrorFallback}
	}

	text := extractText(resp)
	if text == "" {
		return &ExplainClauseResult{Explanation: explainEmptyFallback}
	}
	return &ExplainClauseResult{Explanation: text}
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return strings.TrimSpace(builder.String())
}
