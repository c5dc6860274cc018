package sceneprompt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "prompt-studio-server/modules/scene-prompt/common"
)

func TestCompileDispatchesCinematic(t *testing.T) {
	configData := []byte(`{
		"global": {"visualStyle": "Sinematik"},
		"location": {"name": "Pantai"},
		"scene": {"description": "berjalan di tepi pantai"}
	}`)

	out, err := Compile("cinematic", common.EngineVeo, configData, nil, nil, false)
	require.NoError(t, err)
	assert.Contains(t, out, "A highly detailed, cinematic video in a Sinematik style.")
}

func TestCompileDefaultsToCinematic(t *testing.T) {
	configData := []byte(`{"global": {"visualStyle": "Sinematik"}}`)

	out, err := Compile("", common.EngineVeo, configData, nil, nil, false)
	require.NoError(t, err)
	assert.Contains(t, out, "cinematic video")
}

func TestCompileDispatchesStopMotion(t *testing.T) {
	configData := []byte(`{
		"global": {},
		"location": {},
		"actionSteps": [{"description": "melompat", "durationSeconds": "3", "cameraMovement": "Pan Right"}]
	}`)

	out, err := Compile("stopmotion", common.EngineRunway, configData, nil, nil, false)
	require.NoError(t, err)
	assert.Contains(t, out, "shot 1: melompat, camera Pan Right, for 3 seconds")
}

func TestCompileUnknownMode(t *testing.T) {
	_, err := Compile("timelapse", common.EngineVeo, []byte(`{}`), nil, nil, false)
	assert.Error(t, err)
}

func TestCompileInvalidJSON(t *testing.T) {
	_, err := Compile("cinematic", common.EngineVeo, []byte(`{not json`), nil, nil, false)
	assert.Error(t, err)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}
