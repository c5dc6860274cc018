package cinematic

import (
	common "prompt-studio-server/modules/scene-prompt/common"
)

// SequenceItemType - 씬 시퀀스 아이템 종류 (닫힌 집합)
type SequenceItemType string

const (
	ItemDialog      SequenceItemType = "dialog"
	ItemPause       SequenceItemType = "pause"
	ItemSoundEffect SequenceItemType = "sfx"
)

// SequenceItem - 대사/정적/효과음 타임라인의 한 단위. 순서가 의미를 가진다
type SequenceItem struct {
	Type SequenceItemType `json:"type"`

	// dialog
	CharacterID string `json:"characterId,omitempty"`
	Text        string `json:"text,omitempty"`
	Language    string `json:"language,omitempty"`
	Intonation  string `json:"intonation,omitempty"`

	// pause
	Duration string `json:"duration,omitempty"` // 초

	// sfx
	Description string `json:"description,omitempty"`
}

// ObjectRef - 씬에서 참조하는 사물 에셋 포인터. 삭제된 에셋을 가리킬 수 있다
type ObjectRef struct {
	ObjectID string `json:"objectId"`
}

// GlobalSettings - 씬 전역 설정
type GlobalSettings struct {
	VisualStyle             string   `json:"visualStyle"`
	Mood                    string   `json:"mood"`
	Lighting                string   `json:"lighting"`
	CameraTypeAndLens       string   `json:"cameraTypeAndLens"`
	TypeShot                string   `json:"typeShot"`
	Time                    string   `json:"time"`
	Weather                 string   `json:"weather"`
	AdditionalVisualDetails string   `json:"additionalVisualDetails"`
	MainCharacterID         string   `json:"mainCharacterId"`
	SupportingCharacterIDs  []string `json:"supportingCharacterIds"` // 최대 3명, 순서 보존
	ExtrasDescription       string   `json:"extrasDescription"`
}

// SceneBody - 씬 본문
type SceneBody struct {
	Duration       string         `json:"duration"`
	Description    string         `json:"description"`
	CameraMovement string         `json:"cameraMovement"`
	AnimationFX    string         `json:"animationFx"`
	CGIFX          string         `json:"cgiFx"`
	Sequence       []SequenceItem `json:"sceneSequence"`
	Objects        []ObjectRef    `json:"objects"`
}

// SceneConfig - 수동(시네마틱) 모드 씬 설정 전체.
// Location은 에셋의 사본이며 저장된 에셋과 달라질 수 있다
type SceneConfig struct {
	Global   GlobalSettings       `json:"global"`
	Location common.SceneLocation `json:"location"`
	Scene    SceneBody            `json:"scene"`
}
