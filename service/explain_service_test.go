package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without a configured client the explanation channel still answers, with
// the static error string the UI shows verbatim.
func TestExplainClauseWithoutClient(t *testing.T) {
	svc := NewExplainService()

	result := svc.ExplainClause(context.Background(), ExplainClauseRequest{
		Title:   "Arbitration of Disputes",
		Content: "Any dispute shall be determined by arbitration.",
	})
	assert.Equal(t, "Error generating AI explanation. Please check your connection.", result.Explanation)
}
