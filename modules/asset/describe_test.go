package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeSubjectAllFieldsEmpty(t *testing.T) {
	s := &Subject{Name: "Maya"}
	assert.Equal(t, "Maya.", DescribeSubject(s))
}

func TestDescribeSubjectNil(t *testing.T) {
	assert.Equal(t, "", DescribeSubject(nil))
}

func TestDescribeSubjectFull(t *testing.T) {
	s := &Subject{
		Name:                 "Maya",
		Gender:               "female",
		Age:                  "25",
		Country:              "Indonesia",
		Height:               "165cm",
		Weight:               "50kg",
		BodyShape:            "slim",
		FaceDescription:      "soft features",
		HairDescription:      "long black hair",
		ClothingDescription:  "a red dress",
		AccessoryDescription: "a silver necklace",
	}

	expected := "Maya (aged 25, female, from Indonesia) who with a height of 165cm, " +
		"and weight of 50kg, has a body shape of slim, soft features, long black hair. " +
		"They are wearing a red dress, accessorized with a silver necklace."
	assert.Equal(t, expected, DescribeSubject(s))
}

func TestDescribeSubjectPartial(t *testing.T) {
	// 빈 속성은 자리표시 없이 통째로 생략된다
	s := &Subject{Name: "Budi", ClothingDescription: "a batik shirt"}
	assert.Equal(t, "Budi. They are wearing a batik shirt.", DescribeSubject(s))
}

func TestDescribeObjectAllFieldsEmpty(t *testing.T) {
	o := &GObject{Name: "Lantern"}
	assert.Equal(t, "A Lantern.", DescribeObject(o))
}

func TestDescribeObjectFull(t *testing.T) {
	o := &GObject{
		Name:           "lantern",
		Category:       "lighting",
		EraStyle:       "Victorian",
		MainColor:      "gold",
		SecondaryColor: "green",
		Material:       "brass",
		Texture:        "hammered metal",
		Condition:      "old",
		Size:           "small",
		Shape:          "teardrop",
		UniqueFeatures: "a cracked glass pane",
		CurrentState:   "glowing faintly",
	}

	expected := "A lantern (old, small, Victorian, lighting) which is shaped like a teardrop, " +
		"made of brass, with a texture of hammered metal, predominantly gold, with hints of green. " +
		"It has some unique features: a cracked glass pane. Currently, it is glowing faintly."
	assert.Equal(t, expected, DescribeObject(o))
}

func TestDescribeSubjectWhitespaceOnlyIsAbsent(t *testing.T) {
	s := &Subject{Name: "Maya", Gender: "   "}
	assert.Equal(t, "Maya.", DescribeSubject(s))
}

func TestFindSubject(t *testing.T) {
	subjects := []Subject{{ID: "s1", Name: "Maya"}, {ID: "s2", Name: "Budi"}}

	found := FindSubject(subjects, "s2")
	assert.NotNil(t, found)
	assert.Equal(t, "Budi", found.Name)

	// 삭제된 참조와 빈 id는 nil
	assert.Nil(t, FindSubject(subjects, "s3"))
	assert.Nil(t, FindSubject(subjects, ""))
}

func TestFindObject(t *testing.T) {
	objects := []GObject{{ID: "o1", Name: "Lantern"}}

	assert.NotNil(t, FindObject(objects, "o1"))
	assert.Nil(t, FindObject(objects, "gone"))
	assert.Nil(t, FindObject(nil, "o1"))
}
