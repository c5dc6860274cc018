package stopmotion

import (
	common "prompt-studio-server/modules/scene-prompt/common"
)

// ActionStep - 순차 촬영의 한 단계. 리스트 순서가 재생 순서
type ActionStep struct {
	Description    string `json:"description"`
	Duration       string `json:"durationSeconds"` // 초, 미입력 시 "2"
	CameraMovement string `json:"cameraMovement"`  // 미입력 시 static
}

// GlobalSettings - 스톱모션 전역 설정
type GlobalSettings struct {
	VisualStyle     string `json:"visualStyle"`
	Mood            string `json:"mood"`
	Time            string `json:"time"`
	Weather         string `json:"weather"`
	MainCharacterID string `json:"mainCharacterId"`
}

// Config - 스톱모션(순차 촬영) 모드 설정 전체
type Config struct {
	Global   GlobalSettings       `json:"global"`
	Location common.SceneLocation `json:"location"`
	Steps    []ActionStep         `json:"actionSteps"`
}
