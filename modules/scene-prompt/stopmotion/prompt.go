package stopmotion

import (
	"fmt"
	"strings"

	"prompt-studio-server/modules/asset"
	common "prompt-studio-server/modules/scene-prompt/common"
)

// CompilePrompt - 스톱모션 설정을 대상 엔진의 프롬프트 문자열로 컴파일한다.
// 순수 함수이며 삭제된 캐릭터 참조는 조용히 생략된다
func CompilePrompt(cfg *Config, subjects []asset.Subject, hasReferenceImage bool, engine common.EngineID) string {
	switch engine.EngineRegister() {
	case common.RegisterImage:
		return compileImageSentence(cfg, subjects)
	case common.RegisterKeywordImage:
		return compileKeywords(cfg, subjects) + " " + common.AspectRatioSuffix
	case common.RegisterKeywordVideo:
		return compileKeywords(cfg, subjects)
	default:
		return compileNarrative(cfg, subjects, hasReferenceImage)
	}
}

// ---------- 서술형 (veo 및 기본값) ----------

func compileNarrative(cfg *Config, subjects []asset.Subject, hasReferenceImage bool) string {
	g := cfg.Global
	var sentences []string

	// 스톱모션 미학 오프닝
	if common.Present(g.VisualStyle) {
		sentences = append(sentences, fmt.Sprintf("A charming stop-motion animation in a %s style.", strings.TrimSpace(g.VisualStyle)))
	} else {
		sentences = append(sentences, "A charming stop-motion animation.")
	}

	// 레퍼런스 이미지가 있으면 시각적 일관성 지시 추가
	if hasReferenceImage {
		sentences = append(sentences, "The characters and visual style must remain perfectly consistent with the provided reference image.")
	}

	// 장소/시간/날씨 (시네마틱 모드와 동일 구조)
	if setting := common.SettingSentences(cfg.Location, g.Time, g.Weather); setting != "" {
		sentences = append(sentences, setting)
	}

	// 무드
	if common.Present(g.Mood) {
		sentences = append(sentences, "The overall mood is "+strings.TrimSpace(g.Mood)+".")
	}

	// 주인공 (참조가 살아있을 때만)
	main := asset.FindSubject(subjects, g.MainCharacterID)
	if main != nil {
		sentences = append(sentences, "The story follows "+common.TrimPeriod(asset.DescribeSubject(main))+".")
	}

	// 액션 체인 (빈 리스트면 문장 자체를 생략)
	if chain := actionChain(cfg.Steps, main); chain != "" {
		sentences = append(sentences, "The sequence unfolds as follows: "+chain+".")
	}

	return common.JoinSentences(sentences)
}

// actionChain - 모든 단계를 ", then, "으로 이어붙인 절
func actionChain(steps []ActionStep, main *asset.Subject) string {
	characterName := "the character"
	if main != nil {
		characterName = strings.TrimSpace(main.Name)
	}

	var clauses []string
	for _, step := range steps {
		clause := fmt.Sprintf("for %s seconds, %s %s",
			common.Or(step.Duration, "2"),
			characterName,
			common.Or(step.Description, "pauses"))
		if common.Present(step.CameraMovement) {
			clause += ", captured with a " + strings.TrimSpace(step.CameraMovement) + " camera movement"
		}
		clauses = append(clauses, clause)
	}

	return strings.Join(clauses, ", then, ")
}

// ---------- 키워드 리스트 (runway/kling, midjourney/flux) ----------

func compileKeywords(cfg *Config, subjects []asset.Subject) string {
	g := cfg.Global
	var terms []string

	appendTerm := func(t string) {
		if common.Present(t) {
			terms = append(terms, strings.TrimSpace(t))
		}
	}

	appendTerm("stop motion animation")
	appendTerm(g.VisualStyle)

	if main := asset.FindSubject(subjects, g.MainCharacterID); main != nil {
		appendTerm(common.TrimPeriod(asset.DescribeSubject(main)))
	} else {
		appendTerm("a character")
	}

	if common.Present(cfg.Location.Name) {
		appendTerm("set in " + strings.TrimSpace(cfg.Location.Name))
	}
	appendTerm(g.Mood)
	appendTerm(g.Time)
	appendTerm(g.Weather)

	// 단계별 샷 리스트 (세미콜론 구분, 기본값 고정: camera static / 2초)
	var shots []string
	for i, step := range cfg.Steps {
		shots = append(shots, fmt.Sprintf("shot %d: %s, camera %s, for %s seconds",
			i+1,
			common.Or(step.Description, "pauses"),
			common.Or(step.CameraMovement, "static"),
			common.Or(step.Duration, "2")))
	}
	if len(shots) > 0 {
		appendTerm(strings.Join(shots, "; "))
	}

	return strings.Join(terms, ", ")
}

// ---------- 묘사형 문장 (imagen) ----------

// compileImageSentence - 스톱모션 결과물은 스틸 한 장이므로
// 첫 번째 액션 단계만 대표 프레임으로 묘사한다
func compileImageSentence(cfg *Config, subjects []asset.Subject) string {
	g := cfg.Global
	var sentences []string

	if common.Present(g.VisualStyle) {
		sentences = append(sentences, fmt.Sprintf("A stop-motion still frame in a %s style.", strings.TrimSpace(g.VisualStyle)))
	} else {
		sentences = append(sentences, "A stop-motion still frame.")
	}

	main := asset.FindSubject(subjects, g.MainCharacterID)
	firstAction := ""
	if len(cfg.Steps) > 0 {
		firstAction = strings.TrimSpace(cfg.Steps[0].Description)
	}

	switch {
	case main != nil && common.Present(firstAction):
		sentences = append(sentences, common.TrimPeriod(asset.DescribeSubject(main))+" "+firstAction+".")
	case main != nil:
		sentences = append(sentences, asset.DescribeSubject(main))
	case common.Present(firstAction):
		sentences = append(sentences, "A character "+firstAction+".")
	}

	if common.Present(cfg.Location.Name) {
		s := "The setting is " + strings.TrimSpace(cfg.Location.Name)
		if common.Present(cfg.Location.Atmosphere) {
			s += ", with a " + strings.TrimSpace(cfg.Location.Atmosphere) + " atmosphere"
		}
		sentences = append(sentences, s+".")
	}

	if common.Present(g.Mood) {
		sentences = append(sentences, "The mood is "+strings.TrimSpace(g.Mood)+".")
	}

	timeWeather := common.JoinPresent(", ", g.Time, g.Weather)
	if timeWeather != "" {
		sentences = append(sentences, "Set during "+timeWeather+".")
	}

	return common.JoinSentences(sentences)
}
