package resume

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultRole подставляется, если роль в тексте резюме не найдена
const DefaultRole = "Software Engineer"

// Vocabulary закрытый список технологий, которые ищем в тексте
var Vocabulary = []string{"Python", "Java", "JavaScript", "React", "Node", "AWS", "Docker", "Kubernetes", "SQL", "Git"}

var (
	rolePattern  = regexp.MustCompile(`(?i)(developer|engineer|manager|analyst|architect)`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	titleCaser   = cases.Title(language.English)
)

// ExtractionResult данные, вычисленные из текста резюме. Используются только для предзаполнения анкеты.
type ExtractionResult struct {
	Skills        []string `json:"skills"`
	InferredRole  string   `json:"inferred_role,omitempty"`
	InferredEmail string   `json:"inferred_email,omitempty"`
}

// RoleOrDefault роль для анкеты подтверждения
func (r ExtractionResult) RoleOrDefault() string {
	if r.InferredRole == "" {
		return DefaultRole
	}
	return r.InferredRole
}

func Analyze(text string) ExtractionResult {
	result := ExtractionResult{
		Skills: DetectSkills(text),
	}
	if role, ok := InferRole(text); ok {
		result.InferredRole = role
	}
	if email, ok := InferEmail(text); ok {
		result.InferredEmail = email
	}
	return result
}

// DetectSkills возвращает термины словаря, встречающиеся в тексте (без учета регистра).
// Результат - множество: без дублей, отсортирован для стабильного вывода.
func DetectSkills(text string) []string {
	lowered := strings.ToLower(text)
	found := map[string]struct{}{}
	for _, term := range Vocabulary {
		if strings.Contains(lowered, strings.ToLower(term)) {
			found[term] = struct{}{}
		}
	}
	skills := make([]string, 0, len(found))
	for term := range found {
		skills = append(skills, term)
	}
	sort.Strings(skills)
	return skills
}

func InferRole(text string) (string, bool) {
	match := rolePattern.FindString(text)
	if match == "" {
		return "", false
	}
	return titleCaser.String(strings.ToLower(match)), true
}

func InferEmail(text string) (string, bool) {
	match := emailPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}
