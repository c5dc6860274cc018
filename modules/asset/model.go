package asset

// 에셋 종류 (studio_assets.asset_kind)
const (
	KindSubject  = "subject"
	KindObject   = "object"
	KindLocation = "location"
	KindAction   = "action"
)

// Subject - 인물 에셋. 빈 문자열 = 미입력
type Subject struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Gender               string `json:"gender"`
	Age                  string `json:"age"`
	Country              string `json:"country"`
	Height               string `json:"height"`
	Weight               string `json:"weight"`
	BodyShape            string `json:"bodyShape"`
	FaceDescription      string `json:"faceDescription"`
	HairDescription      string `json:"hairDescription"`
	ClothingDescription  string `json:"clothingDescription"`
	AccessoryDescription string `json:"accessoryDescription"`
}

// GObject - 사물 에셋
type GObject struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	EraStyle         string `json:"eraStyle"`
	MainColor        string `json:"mainColor"`
	SecondaryColor   string `json:"secondaryColor"`
	Material         string `json:"material"`
	Texture          string `json:"texture"`
	Condition        string `json:"condition"`
	Size             string `json:"size"`
	Shape            string `json:"shape"`
	Function         string `json:"function"`
	InteractiveParts string `json:"interactiveParts"`
	CurrentState     string `json:"currentState"`
	EmittedLight     string `json:"emittedLight"`
	EmittedSound     string `json:"emittedSound"`
	UniqueFeatures   string `json:"uniqueFeatures"`
	History          string `json:"history"`
}

// Location - 장소 에셋
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Atmosphere  string `json:"atmosphere"`
	KeyElements string `json:"keyElements"`
}

// Action - 액션 에셋 (name은 완전한 서술형 문장)
type Action struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Genre string `json:"genre"`
}

// FindSubject - ID로 인물 조회. 못 찾으면 nil (삭제된 참조 허용)
func FindSubject(subjects []Subject, id string) *Subject {
	if id == "" {
		return nil
	}
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i]
		}
	}
	return nil
}

// FindObject - ID로 사물 조회. 못 찾으면 nil
func FindObject(objects []GObject, id string) *GObject {
	if id == "" {
		return nil
	}
	for i := range objects {
		if objects[i].ID == id {
			return &objects[i]
		}
	}
	return nil
}
