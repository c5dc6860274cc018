package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeNegativePromptExactSuffix(t *testing.T) {
	categories := []NegativeCategory{
		{Name: "A", Terms: []string{"x", "y"}},
		{Name: "B", Terms: []string{"z"}},
	}
	enabled := map[string]bool{"A": true, "B": false}

	assert.Equal(t, "\n\nNegative prompt:\nx, y", ComposeNegativePrompt(categories, enabled))
}

func TestComposeNegativePromptNoneEnabled(t *testing.T) {
	categories := []NegativeCategory{{Name: "A", Terms: []string{"x"}}}

	assert.Equal(t, "", ComposeNegativePrompt(categories, nil))
	assert.Equal(t, "", ComposeNegativePrompt(categories, map[string]bool{"A": false}))
	assert.Equal(t, "", ComposeNegativePrompt(nil, map[string]bool{"A": true}))
}

func TestComposeNegativeTermsDeclarationOrder(t *testing.T) {
	categories := []NegativeCategory{
		{Name: "second", Terms: []string{"b"}},
		{Name: "first", Terms: []string{"a"}},
	}
	// 맵 순서가 아니라 테이블 선언 순서를 따른다
	enabled := map[string]bool{"first": true, "second": true}

	assert.Equal(t, "b, a", ComposeNegativeTerms(categories, enabled))
}

func TestDefaultNegativeCategoriesAllEnabled(t *testing.T) {
	enabled := map[string]bool{"quality": true, "anatomy": true, "text": true, "style": true}

	terms := ComposeNegativeTerms(DefaultNegativeCategories, enabled)
	assert.True(t, strings.HasPrefix(terms, "blurry, "))
	assert.True(t, strings.HasSuffix(terms, ", anime"))
	assert.Contains(t, terms, "deformed hands")
	assert.Contains(t, terms, "watermark")
}
