package cinematic

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-server/modules/asset"
	common "prompt-studio-server/modules/scene-prompt/common"
)

func beachSceneConfig() *SceneConfig {
	return &SceneConfig{
		Global: GlobalSettings{
			VisualStyle:       "Sinematik",
			Mood:              "Romantis",
			Lighting:          "Golden Hour",
			CameraTypeAndLens: "ARRI Alexa",
			TypeShot:          "Medium Shot",
			Time:              "Sore",
			Weather:           "Cerah",
			MainCharacterID:   "maya-1",
		},
		Location: common.SceneLocation{
			Name:        "Pantai",
			Atmosphere:  "Tenang",
			KeyElements: "Pasir putih",
		},
		Scene: SceneBody{
			Description: "berjalan di tepi pantai",
		},
	}
}

func beachSubjects() []asset.Subject {
	return []asset.Subject{{ID: "maya-1", Name: "Maya"}}
}

func TestCompileNarrativeBeachScene(t *testing.T) {
	out := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineVeo)

	expected := "A highly detailed, cinematic video in a Sinematik style. " +
		"The scene unfolds in Pantai, a place with a Tenang atmosphere. " +
		"Key elements include: Pasir putih during the Sore under cerah skies. " +
		"The overall mood is Romantis, enhanced by Golden Hour lighting. " +
		"Captured with a ARRI Alexa, framed as a Medium Shot. " +
		"The main focus is on Maya. " +
		"In this scene, Maya berjalan di tepi pantai."
	assert.Equal(t, expected, out)
}

func TestCompileIsDeterministic(t *testing.T) {
	cfg := beachSceneConfig()
	subjects := beachSubjects()

	first := CompilePrompt(cfg, subjects, nil, common.EngineVeo)
	second := CompilePrompt(cfg, subjects, nil, common.EngineVeo)
	assert.Equal(t, first, second)
}

func TestUnknownEngineFallsBackToNarrative(t *testing.T) {
	narrative := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineVeo)
	unknown := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineID("sora"))

	assert.Equal(t, narrative, unknown)
}

func TestMissingMainCharacterNarrative(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Global.MainCharacterID = "deleted-id"

	out := CompilePrompt(cfg, beachSubjects(), nil, common.EngineVeo)

	// 주연 문장은 생략되고 액션 문장은 일반 명사로 대체된다
	assert.NotContains(t, out, "The main focus is on")
	assert.Contains(t, out, "In this scene, the character berjalan di tepi pantai.")
}

func TestMissingMainCharacterKeyword(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Global.MainCharacterID = "deleted-id"

	out := CompilePrompt(cfg, beachSubjects(), nil, common.EngineRunway)
	assert.Contains(t, out, "a character")
}

func TestNarrativeSequenceClauses(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Scene.Sequence = []SequenceItem{
		{Type: ItemDialog, CharacterID: "maya-1", Text: "Halo", Language: "Indonesian", Intonation: "soft"},
		{Type: ItemPause},
		{Type: ItemSoundEffect, Description: "ocean  waves"},
	}

	out := CompilePrompt(cfg, beachSubjects(), nil, common.EngineVeo)

	assert.Contains(t, out, "Throughout the scene, "+
		"Maya says, \"Halo\" in Indonesian with a soft intonation, "+
		"followed by a pause for 1 second, "+
		"followed by the sound of ocean waves is heard.")
}

func TestDialogClauseOmitsNoLanguageMarker(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Scene.Sequence = []SequenceItem{
		{Type: ItemDialog, CharacterID: "maya-1", Text: "Halo", Language: "Tanpa Bahasa"},
	}

	out := CompilePrompt(cfg, beachSubjects(), nil, common.EngineVeo)

	assert.Contains(t, out, "Maya says, \"Halo\"")
	assert.NotContains(t, out, "Tanpa Bahasa")
}

func TestPauseClausePluralization(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Scene.Sequence = []SequenceItem{
		{Type: ItemPause, Duration: "3"},
	}

	out := CompilePrompt(cfg, beachSubjects(), nil, common.EngineVeo)
	assert.Contains(t, out, "a pause for 3 seconds")
}

func TestKeywordImageAppendsAspectRatioSuffix(t *testing.T) {
	midjourney := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineMidjourney)
	flux := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineFlux)
	runway := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineRunway)

	assert.True(t, strings.HasSuffix(midjourney, " --ar 16:9"))
	assert.True(t, strings.HasSuffix(flux, " --ar 16:9"))
	assert.NotContains(t, runway, "--ar")
}

func TestKeywordVideoRendersSequenceAndDropsPauses(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Scene.Sequence = []SequenceItem{
		{Type: ItemDialog, CharacterID: "maya-1", Text: "Halo", Intonation: "soft"},
		{Type: ItemPause, Duration: "5"},
		{Type: ItemSoundEffect, Description: "crashing waves"},
	}

	runway := CompilePrompt(cfg, beachSubjects(), nil, common.EngineRunway)
	assert.Contains(t, runway, "Maya says \"Halo\" (soft)")
	assert.Contains(t, runway, "sound effect of crashing waves")
	assert.NotContains(t, runway, "pause")

	// 이미지 키워드 출력은 시퀀스 조각을 포함하지 않는다
	midjourney := CompilePrompt(cfg, beachSubjects(), nil, common.EngineMidjourney)
	assert.NotContains(t, midjourney, "says")
}

func TestImageRegisterSentences(t *testing.T) {
	out := CompilePrompt(beachSceneConfig(), beachSubjects(), nil, common.EngineImagen)

	assert.Contains(t, out, "A Sinematik style image, Medium Shot.")
	assert.Contains(t, out, "Maya berjalan di tepi pantai.")
	assert.Contains(t, out, "The setting is Pantai, with a Tenang atmosphere and key elements of Pasir putih during the Sore.")
	assert.Contains(t, out, "The mood is Romantis, with Golden Hour lighting.")
	assert.Contains(t, out, "Shot on a ARRI Alexa.")
}

func TestSceneObjectsRendered(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Scene.Objects = []ObjectRef{{ObjectID: "o1"}, {ObjectID: "deleted"}}
	objects := []asset.GObject{{ID: "o1", Name: "lantern", MainColor: "gold"}}

	out := CompilePrompt(cfg, beachSubjects(), objects, common.EngineVeo)

	// 살아있는 참조만 렌더링되고 삭제된 참조는 조용히 생략
	assert.Contains(t, out, "The scene features a lantern which is predominantly gold.")
}

func TestJSONRoundTripRecompiles(t *testing.T) {
	cfg := beachSceneConfig()
	cfg.Scene.Sequence = []SequenceItem{
		{Type: ItemDialog, CharacterID: "maya-1", Text: "Halo", Intonation: "soft"},
		{Type: ItemPause, Duration: "2"},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var restored SceneConfig
	require.NoError(t, json.Unmarshal(data, &restored))

	original := CompilePrompt(cfg, beachSubjects(), nil, common.EngineVeo)
	recompiled := CompilePrompt(&restored, beachSubjects(), nil, common.EngineVeo)
	assert.Equal(t, original, recompiled)
}

func TestEmptyConfigCompilesToEmptyString(t *testing.T) {
	out := CompilePrompt(&SceneConfig{}, nil, nil, common.EngineVeo)
	assert.Equal(t, "", out)
}
