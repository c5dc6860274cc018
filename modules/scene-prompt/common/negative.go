package common

import "strings"

// NegativeCategory - 네거티브 프롬프트 카테고리 (선언 순서가 출력 순서)
type NegativeCategory struct {
	Name  string
	Terms []string
}

// DefaultNegativeCategories - 기본 네거티브 카테고리 테이블
var DefaultNegativeCategories = []NegativeCategory{
	{
		Name:  "quality",
		Terms: []string{"blurry", "low resolution", "pixelated", "jpeg artifacts", "oversaturated"},
	},
	{
		Name:  "anatomy",
		Terms: []string{"deformed hands", "extra fingers", "distorted face", "unnatural proportions"},
	},
	{
		Name:  "text",
		Terms: []string{"text", "watermark", "subtitles", "logo", "signature"},
	},
	{
		Name:  "style",
		Terms: []string{"cartoon", "3d render", "illustration", "anime"},
	},
}

// ComposeNegativeTerms - 활성화된 카테고리의 용어를 테이블 선언 순서대로 합친다.
// 활성 카테고리가 없으면 빈 문자열
func ComposeNegativeTerms(categories []NegativeCategory, enabled map[string]bool) string {
	var terms []string
	for _, cat := range categories {
		if !enabled[cat.Name] {
			continue
		}
		terms = append(terms, cat.Terms...)
	}
	return strings.Join(terms, ", ")
}

// ComposeNegativePrompt - 프롬프트 본문 뒤에 붙일 네거티브 접미사 블록.
// 활성 카테고리가 없으면 빈 문자열 (호출자가 구분자 없이 그대로 이어붙인다)
func ComposeNegativePrompt(categories []NegativeCategory, enabled map[string]bool) string {
	terms := ComposeNegativeTerms(categories, enabled)
	if terms == "" {
		return ""
	}
	return "\n\nNegative prompt:\n" + terms
}
