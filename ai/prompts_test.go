package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptJoinsWithBlankLine(t *testing.T) {
	assert.Equal(t, "do it\n\nSELECT 1;", BuildPrompt("do it", "SELECT 1;"))
}

func TestBuildPromptKeepsContentVerbatim(t *testing.T) {
	content := "SELECT '%s' FROM \"t\"\r\n-- {{ not a template }}"
	got := BuildPrompt("x", content)
	assert.True(t, strings.HasSuffix(got, content))
}

func TestTemplatedPrompts(t *testing.T) {
	conv := BuildConversionPrompt("SELECT FIRST 10 * FROM t;")
	assert.True(t, strings.HasPrefix(conv, "Convert the given Firebird SQL query into PostgreSQL syntax"))
	assert.True(t, strings.HasSuffix(conv, "original.\n\nSELECT FIRST 10 * FROM t;"))

	tests := BuildTestPrompt("SELECT * FROM t LIMIT 10;")
	assert.True(t, strings.HasPrefix(tests, "Generate a set of test cases for the given PostgreSQL query."))
	assert.Contains(t, tests, "information_schema")
	assert.True(t, strings.HasSuffix(tests, "original query.\n\nSELECT * FROM t LIMIT 10;"))
}
