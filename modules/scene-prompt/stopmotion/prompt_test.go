package stopmotion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-studio-server/modules/asset"
	common "prompt-studio-server/modules/scene-prompt/common"
)

func jumpRunConfig() *Config {
	return &Config{
		Steps: []ActionStep{
			{Description: "melompat", Duration: "3", CameraMovement: "Pan Right"},
			{Description: "berlari", Duration: "2", CameraMovement: ""},
		},
	}
}

func TestKeywordShotListExactFormat(t *testing.T) {
	out := CompilePrompt(jumpRunConfig(), nil, false, common.EngineRunway)

	// 단계 리스트의 형식은 고정: 기본 카메라는 static, 기본 길이는 2초
	assert.True(t, strings.HasSuffix(out,
		"shot 1: melompat, camera Pan Right, for 3 seconds; shot 2: berlari, camera static, for 2 seconds"))
}

func TestKeywordOpensWithStopMotionTerm(t *testing.T) {
	out := CompilePrompt(jumpRunConfig(), nil, false, common.EngineRunway)

	assert.True(t, strings.HasPrefix(out, "stop motion animation, "))
	// 주인공이 없으면 일반 명사로 대체
	assert.Contains(t, out, "a character")
}

func TestKeywordImageAppendsAspectRatioSuffix(t *testing.T) {
	midjourney := CompilePrompt(jumpRunConfig(), nil, false, common.EngineMidjourney)
	runway := CompilePrompt(jumpRunConfig(), nil, false, common.EngineRunway)

	assert.True(t, strings.HasSuffix(midjourney, " --ar 16:9"))
	assert.NotContains(t, runway, "--ar")
}

func TestNarrativeActionChain(t *testing.T) {
	cfg := jumpRunConfig()
	cfg.Global.MainCharacterID = "s1"
	subjects := []asset.Subject{{ID: "s1", Name: "Budi"}}

	out := CompilePrompt(cfg, subjects, false, common.EngineVeo)

	assert.Contains(t, out, "The sequence unfolds as follows: "+
		"for 3 seconds, Budi melompat, captured with a Pan Right camera movement, "+
		"then, for 2 seconds, Budi berlari.")
}

func TestNarrativeStepDefaults(t *testing.T) {
	cfg := &Config{
		Steps: []ActionStep{{}},
	}

	out := CompilePrompt(cfg, nil, false, common.EngineVeo)
	assert.Contains(t, out, "for 2 seconds, the character pauses")
}

func TestNarrativeOpeningWithStyle(t *testing.T) {
	cfg := jumpRunConfig()
	cfg.Global.VisualStyle = "claymation"

	out := CompilePrompt(cfg, nil, false, common.EngineVeo)
	assert.True(t, strings.HasPrefix(out, "A charming stop-motion animation in a claymation style."))

	// 스타일이 없어도 오프닝 문장은 항상 나온다
	plain := CompilePrompt(jumpRunConfig(), nil, false, common.EngineVeo)
	assert.True(t, strings.HasPrefix(plain, "A charming stop-motion animation."))
}

func TestNarrativeReferenceImageSentence(t *testing.T) {
	consistency := "The characters and visual style must remain perfectly consistent with the provided reference image."

	withRef := CompilePrompt(jumpRunConfig(), nil, true, common.EngineVeo)
	withoutRef := CompilePrompt(jumpRunConfig(), nil, false, common.EngineVeo)

	assert.Contains(t, withRef, consistency)
	assert.NotContains(t, withoutRef, consistency)
}

func TestEmptyStepsOmitSequenceSentence(t *testing.T) {
	out := CompilePrompt(&Config{}, nil, false, common.EngineVeo)

	assert.NotContains(t, out, "The sequence unfolds")
	assert.Equal(t, "A charming stop-motion animation.", out)
}

func TestImageRegisterUsesFirstStepOnly(t *testing.T) {
	out := CompilePrompt(jumpRunConfig(), nil, false, common.EngineImagen)

	// 스틸 한 장이므로 첫 단계만 대표 프레임으로 쓴다
	assert.Contains(t, out, "A character melompat.")
	assert.NotContains(t, out, "berlari")
	assert.True(t, strings.HasPrefix(out, "A stop-motion still frame."))
}

func TestSettingSharedWithCinematicStructure(t *testing.T) {
	cfg := jumpRunConfig()
	cfg.Location = common.SceneLocation{Name: "Pantai", Atmosphere: "Tenang", KeyElements: "Pasir putih"}
	cfg.Global.Time = "Sore"
	cfg.Global.Weather = "Cerah"

	out := CompilePrompt(cfg, nil, false, common.EngineVeo)
	assert.Contains(t, out, "The scene unfolds in Pantai, a place with a Tenang atmosphere. "+
		"Key elements include: Pasir putih during the Sore under cerah skies.")
}

func TestUnknownEngineFallsBackToNarrative(t *testing.T) {
	narrative := CompilePrompt(jumpRunConfig(), nil, false, common.EngineVeo)
	unknown := CompilePrompt(jumpRunConfig(), nil, false, common.EngineID("pika"))

	assert.Equal(t, narrative, unknown)
}
