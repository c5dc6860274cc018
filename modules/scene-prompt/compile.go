package sceneprompt

import (
	"encoding/json"
	"fmt"

	"prompt-studio-server/modules/asset"
	commonmodel "prompt-studio-server/modules/common/model"
	"prompt-studio-server/modules/scene-prompt/cinematic"
	common "prompt-studio-server/modules/scene-prompt/common"
	"prompt-studio-server/modules/scene-prompt/stopmotion"
)

// Compile - 모드별 설정 JSON을 파싱해 엔진 프롬프트로 컴파일한다.
// 생성 워커와 스튜디오 세션이 공유하는 진입점
func Compile(mode string, engine common.EngineID, configData []byte, subjects []asset.Subject, objects []asset.GObject, hasReferenceImage bool) (string, error) {
	switch mode {
	case commonmodel.ModeStopMotion:
		var cfg stopmotion.Config
		if err := json.Unmarshal(configData, &cfg); err != nil {
			return "", fmt.Errorf("invalid stop-motion config: %w", err)
		}
		return stopmotion.CompilePrompt(&cfg, subjects, hasReferenceImage, engine), nil

	case commonmodel.ModeCinematic, "":
		var cfg cinematic.SceneConfig
		if err := json.Unmarshal(configData, &cfg); err != nil {
			return "", fmt.Errorf("invalid cinematic config: %w", err)
		}
		return cinematic.CompilePrompt(&cfg, subjects, objects, engine), nil

	default:
		return "", fmt.Errorf("unknown compile mode: %s", mode)
	}
}
