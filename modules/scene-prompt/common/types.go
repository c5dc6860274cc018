package common

import "strings"

// EngineID - 프롬프트를 컴파일할 대상 생성 엔진
type EngineID string

const (
	EngineVeo        EngineID = "veo"
	EngineRunway     EngineID = "runway"
	EngineKling      EngineID = "kling"
	EngineImagen     EngineID = "imagen"
	EngineMidjourney EngineID = "midjourney"
	EngineFlux       EngineID = "flux"
)

// Register - 엔진별 출력 형태
type Register int

const (
	RegisterNarrative    Register = iota // 서술형 문단 (veo 및 기본값)
	RegisterKeywordVideo                 // 키워드 리스트 + 대사/효과음 조각 (runway, kling)
	RegisterKeywordImage                 // 키워드 리스트 + 종횡비 토큰 (midjourney, flux)
	RegisterImage                        // 묘사형 문장 (imagen)
)

// AspectRatioSuffix - 이미지 키워드 출력 끝에 붙는 고정 토큰
const AspectRatioSuffix = "--ar 16:9"

// NoLanguageMarker - 대사에 언어를 지정하지 않았음을 뜻하는 마커 (출력에서 생략)
const NoLanguageMarker = "Tanpa Bahasa"

// ParseEngine - 엔진 문자열 파싱. 알 수 없는 값은 veo(서술형)로 폴백, 에러 없음
func ParseEngine(s string) EngineID {
	switch EngineID(strings.ToLower(strings.TrimSpace(s))) {
	case EngineVeo:
		return EngineVeo
	case EngineRunway:
		return EngineRunway
	case EngineKling:
		return EngineKling
	case EngineImagen:
		return EngineImagen
	case EngineMidjourney:
		return EngineMidjourney
	case EngineFlux:
		return EngineFlux
	}
	return EngineVeo
}

// EngineRegister - 엔진이 속한 출력 형태
func (e EngineID) EngineRegister() Register {
	switch e {
	case EngineRunway, EngineKling:
		return RegisterKeywordVideo
	case EngineMidjourney, EngineFlux:
		return RegisterKeywordImage
	case EngineImagen:
		return RegisterImage
	default:
		return RegisterNarrative
	}
}

// Present - 모든 컴파일러가 공유하는 단일 입력 판정 규칙:
// 트림 후 비어있지 않으면 입력된 값
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Or - 값이 비어있으면 기본값 반환
func Or(s, fallback string) string {
	if Present(s) {
		return strings.TrimSpace(s)
	}
	return fallback
}

// JoinPresent - 입력된 조각만 모아 연결
func JoinPresent(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if Present(p) {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

// CollapseSpaces - 연속 공백을 하나로 정리
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TrimPeriod - 문장 끝 마침표 제거 (키워드 리스트 삽입용)
func TrimPeriod(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ".")
}

// JoinSentences - 문장들을 공백으로 연결하며 이중 마침표 제거
func JoinSentences(sentences []string) string {
	out := strings.Join(sentences, " ")
	out = CollapseSpaces(out)
	for strings.Contains(out, "..") {
		out = strings.ReplaceAll(out, "..", ".")
	}
	return out
}

// SceneLocation - 씬에 내장되는 장소 사본.
// 저장된 Location 에셋에서 복사한 뒤 자유롭게 수정할 수 있다
type SceneLocation struct {
	Name        string `json:"name"`
	Atmosphere  string `json:"atmosphere"`
	KeyElements string `json:"keyElements"`
}

// SettingSentences - 장소/시간/날씨 설정 문장 생성 (시네마틱/스톱모션 공용)
// 예: "The scene unfolds in Pantai, a place with a Tenang atmosphere.
//      Key elements include: Pasir putih during the Sore under cerah skies."
func SettingSentences(loc SceneLocation, timeOfDay, weather string) string {
	var sentences []string

	if Present(loc.Name) {
		s := "The scene unfolds in " + strings.TrimSpace(loc.Name)
		if Present(loc.Atmosphere) {
			s += ", a place with a " + strings.TrimSpace(loc.Atmosphere) + " atmosphere"
		}
		sentences = append(sentences, s+".")
	} else if Present(loc.Atmosphere) {
		sentences = append(sentences, "The scene is set in a place with a "+strings.TrimSpace(loc.Atmosphere)+" atmosphere.")
	}

	timeWeather := ""
	if Present(timeOfDay) {
		timeWeather += " during the " + strings.TrimSpace(timeOfDay)
	}
	if Present(weather) {
		timeWeather += " under " + strings.ToLower(strings.TrimSpace(weather)) + " skies"
	}

	if Present(loc.KeyElements) {
		sentences = append(sentences, "Key elements include: "+strings.TrimSpace(loc.KeyElements)+timeWeather+".")
	} else if timeWeather != "" {
		sentences = append(sentences, "The scene takes place"+timeWeather+".")
	}

	return strings.Join(sentences, " ")
}
