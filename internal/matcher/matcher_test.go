package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher(t *testing.T) {
	m := New[string]()
	m.Use("logging")
	m.Add("/*", "all")
	m.Add("/church.v1.Conditional/*", "conditional")
	m.Add("/church.v1.Conditional/Branch", "branch")

	assert.Equal(t, []string{"logging", "branch"}, m.Match("/church.v1.Conditional/Branch"))
	assert.Equal(t, []string{"logging", "conditional"}, m.Match("/church.v1.Conditional/Not"))
	assert.Equal(t, []string{"logging", "all"}, m.Match("/grpc.health.v1.Health/Check"))
}

func TestMatcherEmpty(t *testing.T) {
	m := New[int]()
	assert.Empty(t, m.Match("/anything"))
}
