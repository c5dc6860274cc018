package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEngine(t *testing.T) {
	assert.Equal(t, EngineVeo, ParseEngine("veo"))
	assert.Equal(t, EngineRunway, ParseEngine("runway"))
	assert.Equal(t, EngineKling, ParseEngine("kling"))
	assert.Equal(t, EngineImagen, ParseEngine("imagen"))
	assert.Equal(t, EngineMidjourney, ParseEngine("midjourney"))
	assert.Equal(t, EngineFlux, ParseEngine("flux"))

	// 대소문자/공백 무시
	assert.Equal(t, EngineMidjourney, ParseEngine("  MidJourney "))
}

func TestParseEngineUnknownFallsBackToVeo(t *testing.T) {
	assert.Equal(t, EngineVeo, ParseEngine("sora"))
	assert.Equal(t, EngineVeo, ParseEngine(""))
	assert.Equal(t, EngineVeo, ParseEngine("???"))
}

func TestEngineRegister(t *testing.T) {
	assert.Equal(t, RegisterNarrative, EngineVeo.EngineRegister())
	assert.Equal(t, RegisterKeywordVideo, EngineRunway.EngineRegister())
	assert.Equal(t, RegisterKeywordVideo, EngineKling.EngineRegister())
	assert.Equal(t, RegisterKeywordImage, EngineMidjourney.EngineRegister())
	assert.Equal(t, RegisterKeywordImage, EngineFlux.EngineRegister())
	assert.Equal(t, RegisterImage, EngineImagen.EngineRegister())

	// 인식되지 않은 엔진은 서술형으로
	assert.Equal(t, RegisterNarrative, EngineID("sora").EngineRegister())
}

func TestPresent(t *testing.T) {
	assert.True(t, Present("x"))
	assert.False(t, Present(""))
	assert.False(t, Present("   "))
}

func TestOr(t *testing.T) {
	assert.Equal(t, "a", Or("a", "b"))
	assert.Equal(t, "b", Or("", "b"))
	assert.Equal(t, "b", Or("  ", "b"))
	assert.Equal(t, "a", Or(" a ", "b"))
}

func TestTrimPeriod(t *testing.T) {
	assert.Equal(t, "Maya", TrimPeriod("Maya."))
	assert.Equal(t, "Maya", TrimPeriod("Maya"))
	assert.Equal(t, "Maya", TrimPeriod(" Maya. "))
}

func TestJoinSentences(t *testing.T) {
	assert.Equal(t, "A. B.", JoinSentences([]string{"A.", "B."}))
	// 이중 마침표와 중복 공백 정리
	assert.Equal(t, "A. B.", JoinSentences([]string{"A..", " B. "}))
	assert.Equal(t, "", JoinSentences(nil))
}

func TestSettingSentencesFull(t *testing.T) {
	loc := SceneLocation{Name: "Pantai", Atmosphere: "Tenang", KeyElements: "Pasir putih"}

	expected := "The scene unfolds in Pantai, a place with a Tenang atmosphere. " +
		"Key elements include: Pasir putih during the Sore under cerah skies."
	assert.Equal(t, expected, SettingSentences(loc, "Sore", "Cerah"))
}

func TestSettingSentencesEmpty(t *testing.T) {
	assert.Equal(t, "", SettingSentences(SceneLocation{}, "", ""))
}

func TestSettingSentencesWithoutKeyElements(t *testing.T) {
	loc := SceneLocation{Name: "Pantai"}
	assert.Equal(t,
		"The scene unfolds in Pantai. The scene takes place during the Sore.",
		SettingSentences(loc, "Sore", ""))
}
