package asset

import "strings"

// present - 트림 후 비어있지 않으면 입력된 것으로 간주
func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// joinPresent - 비어있지 않은 조각만 모아서 연결
func joinPresent(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if present(p) {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

// cleanSentence - 공백 정리 후 마침표 하나로 끝맺음
func cleanSentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " .", ".")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	s = strings.TrimSuffix(s, ".")
	return s + "."
}

// DescribeSubject - 인물 에셋을 서술형 문장으로 변환
// 입력된 속성만 정해진 순서로 이어붙인다. 전부 비어있으면 "{Name}."
func DescribeSubject(s *Subject) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(s.Name))

	// 괄호 절: 나이, 성별, 출신
	var paren []string
	if present(s.Age) {
		paren = append(paren, "aged "+strings.TrimSpace(s.Age))
	}
	if present(s.Gender) {
		paren = append(paren, strings.TrimSpace(s.Gender))
	}
	if present(s.Country) {
		paren = append(paren, "from "+strings.TrimSpace(s.Country))
	}
	if len(paren) > 0 {
		b.WriteString(" (" + strings.Join(paren, ", ") + ")")
	}

	// "who ..." 절: 신체 묘사
	var who []string
	if present(s.Height) {
		who = append(who, "with a height of "+strings.TrimSpace(s.Height))
	}
	if present(s.Weight) {
		who = append(who, "and weight of "+strings.TrimSpace(s.Weight))
	}
	if present(s.BodyShape) {
		who = append(who, "has a body shape of "+strings.TrimSpace(s.BodyShape))
	}
	if present(s.FaceDescription) {
		who = append(who, strings.TrimSpace(s.FaceDescription))
	}
	if present(s.HairDescription) {
		who = append(who, strings.TrimSpace(s.HairDescription))
	}
	if len(who) > 0 {
		b.WriteString(" who " + strings.Join(who, ", "))
	}

	b.WriteString(".")

	// "They are ..." 절: 의상/악세사리
	var they []string
	if present(s.ClothingDescription) {
		they = append(they, "wearing "+strings.TrimSpace(s.ClothingDescription))
	}
	if present(s.AccessoryDescription) {
		they = append(they, "accessorized with "+strings.TrimSpace(s.AccessoryDescription))
	}
	if len(they) > 0 {
		b.WriteString(" They are " + strings.Join(they, ", ") + ".")
	}

	return cleanSentence(b.String())
}

// DescribeObject - 사물 에셋을 서술형 문장으로 변환
// 전부 비어있으면 "A {Name}."
func DescribeObject(o *GObject) string {
	if o == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("A " + strings.TrimSpace(o.Name))

	// 괄호 절: 상태, 크기, 시대, 분류
	paren := joinPresent(", ", o.Condition, o.Size, o.EraStyle, o.Category)
	if paren != "" {
		b.WriteString(" (" + paren + ")")
	}

	// "which is ..." 절: 형태/재질/색
	var which []string
	if present(o.Shape) {
		which = append(which, "shaped like a "+strings.TrimSpace(o.Shape))
	}
	if present(o.Material) {
		which = append(which, "made of "+strings.TrimSpace(o.Material))
	}
	if present(o.Texture) {
		which = append(which, "with a texture of "+strings.TrimSpace(o.Texture))
	}
	if present(o.MainColor) {
		which = append(which, "predominantly "+strings.TrimSpace(o.MainColor))
	}
	if present(o.SecondaryColor) {
		which = append(which, "with hints of "+strings.TrimSpace(o.SecondaryColor))
	}
	if len(which) > 0 {
		b.WriteString(" which is " + strings.Join(which, ", "))
	}

	b.WriteString(".")

	if present(o.UniqueFeatures) {
		b.WriteString(" It has some unique features: " + strings.TrimSpace(o.UniqueFeatures) + ".")
	}
	if present(o.CurrentState) {
		b.WriteString(" Currently, it is " + strings.TrimSpace(o.CurrentState) + ".")
	}

	return cleanSentence(b.String())
}
