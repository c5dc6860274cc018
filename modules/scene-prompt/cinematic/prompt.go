package cinematic

import (
	"fmt"
	"strings"

	"prompt-studio-server/modules/asset"
	common "prompt-studio-server/modules/scene-prompt/common"
)

// CompilePrompt - 씬 설정을 대상 엔진의 프롬프트 문자열로 컴파일한다.
// 순수 함수: 입력을 수정하지 않고, 같은 입력이면 항상 같은 출력.
// 삭제된 에셋을 가리키는 참조는 조용히 생략된다
func CompilePrompt(cfg *SceneConfig, subjects []asset.Subject, objects []asset.GObject, engine common.EngineID) string {
	switch engine.EngineRegister() {
	case common.RegisterImage:
		return compileImageSentences(cfg, subjects, objects)
	case common.RegisterKeywordImage:
		return compileKeywords(cfg, subjects, objects, false) + " " + common.AspectRatioSuffix
	case common.RegisterKeywordVideo:
		return compileKeywords(cfg, subjects, objects, true)
	default:
		return compileNarrative(cfg, subjects, objects)
	}
}

// ---------- 서술형 (veo 및 기본값) ----------

func compileNarrative(cfg *SceneConfig, subjects []asset.Subject, objects []asset.GObject) string {
	g := cfg.Global
	var sentences []string

	// (a) 스타일 오프닝
	if common.Present(g.VisualStyle) {
		sentences = append(sentences, fmt.Sprintf("A highly detailed, cinematic video in a %s style.", strings.TrimSpace(g.VisualStyle)))
	}

	// (b) 장소 + 시간 + 날씨
	if setting := common.SettingSentences(cfg.Location, g.Time, g.Weather); setting != "" {
		sentences = append(sentences, setting)
	}

	// (c) 무드 + 조명
	if s := moodLightingSentence(g.Mood, g.Lighting); s != "" {
		sentences = append(sentences, s)
	}

	// (d) 카메라 + 샷 타입 + 무빙
	if s := cameraSentence(g.CameraTypeAndLens, g.TypeShot, cfg.Scene.CameraMovement); s != "" {
		sentences = append(sentences, s)
	}

	// (e) 주연 (참조가 살아있을 때만)
	main := asset.FindSubject(subjects, g.MainCharacterID)
	if main != nil {
		sentences = append(sentences, "The main focus is on "+common.TrimPeriod(asset.DescribeSubject(main))+".")
	}

	// (f) 조연
	var supporting []string
	for _, id := range g.SupportingCharacterIDs {
		if s := asset.FindSubject(subjects, id); s != nil {
			supporting = append(supporting, common.TrimPeriod(asset.DescribeSubject(s)))
		}
	}
	if len(supporting) > 0 {
		if main != nil {
			sentences = append(sentences, "They are joined by "+strings.Join(supporting, "; ")+".")
		} else {
			sentences = append(sentences, "The scene includes "+strings.Join(supporting, "; ")+".")
		}
	}

	// 엑스트라
	if common.Present(g.ExtrasDescription) {
		sentences = append(sentences, "The background is filled with "+strings.TrimSpace(g.ExtrasDescription)+".")
	}

	// (g) 씬 사물
	var objectDescs []string
	for _, ref := range cfg.Scene.Objects {
		if o := asset.FindObject(objects, ref.ObjectID); o != nil {
			objectDescs = append(objectDescs, lowerArticle(common.TrimPeriod(asset.DescribeObject(o))))
		}
	}
	if len(objectDescs) > 0 {
		sentences = append(sentences, "The scene features "+strings.Join(objectDescs, "; ")+".")
	}

	// (h) 핵심 액션
	if common.Present(cfg.Scene.Description) {
		if main != nil {
			sentences = append(sentences, fmt.Sprintf("In this scene, %s %s.", strings.TrimSpace(main.Name), strings.TrimSpace(cfg.Scene.Description)))
		} else {
			sentences = append(sentences, fmt.Sprintf("In this scene, the character %s.", strings.TrimSpace(cfg.Scene.Description)))
		}
	}

	// (i) 이펙트
	fx := common.JoinPresent(" and ", cfg.Scene.AnimationFX, cfg.Scene.CGIFX)
	if fx != "" {
		sentences = append(sentences, "The scene is enhanced with "+fx+".")
	}

	// (j) 추가 비주얼 디테일
	if common.Present(g.AdditionalVisualDetails) {
		sentences = append(sentences, "Additional visual details: "+strings.TrimSpace(g.AdditionalVisualDetails)+".")
	}

	// (k) 오디오 시퀀스
	if clause := audioSequenceClause(cfg.Scene.Sequence, subjects); clause != "" {
		sentences = append(sentences, "Throughout the scene, "+clause+".")
	}

	return common.JoinSentences(sentences)
}

// moodLightingSentence - 무드/조명 문장. 둘 다 비어있으면 ""
func moodLightingSentence(mood, lighting string) string {
	switch {
	case common.Present(mood) && common.Present(lighting):
		return fmt.Sprintf("The overall mood is %s, enhanced by %s lighting.", strings.TrimSpace(mood), strings.TrimSpace(lighting))
	case common.Present(mood):
		return fmt.Sprintf("The overall mood is %s.", strings.TrimSpace(mood))
	case common.Present(lighting):
		return fmt.Sprintf("The scene is lit with %s lighting.", strings.TrimSpace(lighting))
	}
	return ""
}

// cameraSentence - 카메라/샷 타입/무빙 문장. 전부 비어있으면 ""
func cameraSentence(camera, typeShot, movement string) string {
	switch {
	case common.Present(camera):
		s := "Captured with a " + strings.TrimSpace(camera)
		if common.Present(typeShot) {
			s += ", framed as a " + strings.TrimSpace(typeShot)
		}
		if common.Present(movement) {
			s += ", with a " + strings.TrimSpace(movement) + " camera movement"
		}
		return s + "."
	case common.Present(typeShot):
		s := "Framed as a " + strings.TrimSpace(typeShot)
		if common.Present(movement) {
			s += ", with a " + strings.TrimSpace(movement) + " camera movement"
		}
		return s + "."
	case common.Present(movement):
		return "The camera performs a " + strings.TrimSpace(movement) + " movement."
	}
	return ""
}

// audioSequenceClause - 씬 시퀀스 전체를 ", followed by"로 이어붙인 절.
// 아이템 종류별 고정 템플릿을 쓰며, 빈 시퀀스면 ""
func audioSequenceClause(sequence []SequenceItem, subjects []asset.Subject) string {
	var clauses []string

	for _, item := range sequence {
		switch item.Type {
		case ItemDialog:
			clauses = append(clauses, dialogClause(item, subjects))
		case ItemPause:
			clauses = append(clauses, pauseClause(item))
		case ItemSoundEffect:
			clauses = append(clauses, soundEffectClause(item))
		}
	}

	return strings.Join(clauses, ", followed by ")
}

// dialogClause - `{Character} says, "{text}" [in {language}] [with a {intonation} intonation]`
func dialogClause(item SequenceItem, subjects []asset.Subject) string {
	name := "a character"
	if s := asset.FindSubject(subjects, item.CharacterID); s != nil {
		name = strings.TrimSpace(s.Name)
	}

	clause := fmt.Sprintf("%s says, \"%s\"", name, strings.TrimSpace(item.Text))
	if common.Present(item.Language) && !strings.EqualFold(strings.TrimSpace(item.Language), common.NoLanguageMarker) {
		clause += " in " + strings.TrimSpace(item.Language)
	}
	if common.Present(item.Intonation) {
		clause += " with a " + strings.TrimSpace(item.Intonation) + " intonation"
	}
	return clause
}

// pauseClause - `a pause for {n} second(s)`. 길이 미입력 시 1초
func pauseClause(item SequenceItem) string {
	n := common.Or(item.Duration, "1")
	unit := "seconds"
	if n == "1" {
		unit = "second"
	}
	return fmt.Sprintf("a pause for %s %s", n, unit)
}

// soundEffectClause - `the sound of {description} is heard`
func soundEffectClause(item SequenceItem) string {
	return common.CollapseSpaces("the sound of " + strings.TrimSpace(item.Description) + " is heard")
}

// ---------- 키워드 리스트 (runway/kling, midjourney/flux) ----------

func compileKeywords(cfg *SceneConfig, subjects []asset.Subject, objects []asset.GObject, withSequence bool) string {
	g := cfg.Global
	var terms []string

	appendTerm := func(t string) {
		if common.Present(t) {
			terms = append(terms, strings.TrimSpace(t))
		}
	}

	appendTerm(g.VisualStyle)
	appendTerm(g.TypeShot)

	// 주연 (삭제된 참조는 "a character"로 대체)
	if main := asset.FindSubject(subjects, g.MainCharacterID); main != nil {
		appendTerm(common.TrimPeriod(asset.DescribeSubject(main)))
	} else {
		appendTerm("a character")
	}

	appendTerm(cfg.Scene.Description)

	// 장소 구절
	if common.Present(cfg.Location.Name) {
		phrase := "set in " + strings.TrimSpace(cfg.Location.Name)
		if common.Present(cfg.Location.Atmosphere) {
			phrase += " with a " + strings.TrimSpace(cfg.Location.Atmosphere) + " atmosphere"
		}
		appendTerm(phrase)
	} else if common.Present(cfg.Location.Atmosphere) {
		appendTerm(strings.TrimSpace(cfg.Location.Atmosphere) + " atmosphere")
	}
	if common.Present(cfg.Location.KeyElements) {
		appendTerm("key elements: " + strings.TrimSpace(cfg.Location.KeyElements))
	}

	appendTerm(g.Mood)
	appendTerm(g.Lighting)
	appendTerm(g.CameraTypeAndLens)
	if common.Present(cfg.Scene.CameraMovement) {
		appendTerm(strings.TrimSpace(cfg.Scene.CameraMovement) + " camera movement")
	}
	appendTerm(cfg.Scene.AnimationFX)
	appendTerm(cfg.Scene.CGIFX)

	// 씬 사물
	for _, ref := range cfg.Scene.Objects {
		if o := asset.FindObject(objects, ref.ObjectID); o != nil {
			appendTerm(lowerArticle(common.TrimPeriod(asset.DescribeObject(o))))
		}
	}

	// 영상 엔진 전용: 대사/효과음 키워드 조각 (정적 아이템은 생략)
	if withSequence {
		for _, item := range cfg.Scene.Sequence {
			switch item.Type {
			case ItemDialog:
				name := "a character"
				if s := asset.FindSubject(subjects, item.CharacterID); s != nil {
					name = strings.TrimSpace(s.Name)
				}
				fragment := fmt.Sprintf("%s says \"%s\"", name, strings.TrimSpace(item.Text))
				if common.Present(item.Intonation) {
					fragment += " (" + strings.TrimSpace(item.Intonation) + ")"
				}
				appendTerm(fragment)
			case ItemSoundEffect:
				appendTerm("sound effect of " + strings.TrimSpace(item.Description))
			case ItemPause:
				// 키워드 출력에는 포함하지 않음
			}
		}
	}

	return strings.Join(terms, ", ")
}

// ---------- 묘사형 문장 (imagen) ----------

func compileImageSentences(cfg *SceneConfig, subjects []asset.Subject, objects []asset.GObject) string {
	g := cfg.Global
	var sentences []string

	// 스타일/샷 타입 헤더
	switch {
	case common.Present(g.VisualStyle) && common.Present(g.TypeShot):
		sentences = append(sentences, fmt.Sprintf("A %s style image, %s.", strings.TrimSpace(g.VisualStyle), strings.TrimSpace(g.TypeShot)))
	case common.Present(g.VisualStyle):
		sentences = append(sentences, fmt.Sprintf("A %s style image.", strings.TrimSpace(g.VisualStyle)))
	case common.Present(g.TypeShot):
		sentences = append(sentences, fmt.Sprintf("A %s image.", strings.TrimSpace(g.TypeShot)))
	}

	// 주연 + 액션 핵심 문장
	main := asset.FindSubject(subjects, g.MainCharacterID)
	switch {
	case main != nil && common.Present(cfg.Scene.Description):
		sentences = append(sentences, common.TrimPeriod(asset.DescribeSubject(main))+" "+strings.TrimSpace(cfg.Scene.Description)+".")
	case main != nil:
		sentences = append(sentences, asset.DescribeSubject(main))
	case common.Present(cfg.Scene.Description):
		sentences = append(sentences, "A character "+strings.TrimSpace(cfg.Scene.Description)+".")
	}

	// 배경 문장
	if common.Present(cfg.Location.Name) {
		s := "The setting is " + strings.TrimSpace(cfg.Location.Name)
		if common.Present(cfg.Location.Atmosphere) {
			s += ", with a " + strings.TrimSpace(cfg.Location.Atmosphere) + " atmosphere"
		}
		if common.Present(cfg.Location.KeyElements) {
			s += " and key elements of " + strings.TrimSpace(cfg.Location.KeyElements)
		}
		if common.Present(g.Time) {
			s += " during the " + strings.TrimSpace(g.Time)
		}
		sentences = append(sentences, s+".")
	}

	// 무드/조명 문장
	switch {
	case common.Present(g.Mood) && common.Present(g.Lighting):
		sentences = append(sentences, fmt.Sprintf("The mood is %s, with %s lighting.", strings.TrimSpace(g.Mood), strings.TrimSpace(g.Lighting)))
	case common.Present(g.Mood):
		sentences = append(sentences, fmt.Sprintf("The mood is %s.", strings.TrimSpace(g.Mood)))
	case common.Present(g.Lighting):
		sentences = append(sentences, fmt.Sprintf("The lighting is %s.", strings.TrimSpace(g.Lighting)))
	}

	// 카메라/렌즈 문장
	if common.Present(g.CameraTypeAndLens) {
		sentences = append(sentences, "Shot on a "+strings.TrimSpace(g.CameraTypeAndLens)+".")
	}

	// 추가 비주얼 디테일 문장
	if common.Present(g.AdditionalVisualDetails) {
		sentences = append(sentences, strings.TrimSpace(g.AdditionalVisualDetails)+".")
	}

	// 이펙트 문장
	fx := common.JoinPresent(" and ", cfg.Scene.AnimationFX, cfg.Scene.CGIFX)
	if fx != "" {
		sentences = append(sentences, "Enhanced with "+fx+".")
	}

	return common.JoinSentences(sentences)
}

// lowerArticle - 문장 중간 삽입을 위해 앞머리 "A "를 "a "로 내린다
func lowerArticle(s string) string {
	if strings.HasPrefix(s, "A ") {
		return "a " + s[2:]
	}
	if strings.HasPrefix(s, "An ") {
		return "an " + s[3:]
	}
	return s
}
