package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const janeResume = "Jane Doe, Senior React Developer, reachable at jane@example.com, skills: React, AWS, Docker"

func TestAnalyze(t *testing.T) {
	t.Run(`resume scenario check`, func(t *testing.T) {
		result := Analyze(janeResume)
		require.Equal(t, []string{"AWS", "Docker", "React"}, result.Skills)
		require.Equal(t, "Developer", result.InferredRole)
		require.Equal(t, "jane@example.com", result.InferredEmail)
	})

	t.Run(`nothing detected check`, func(t *testing.T) {
		result := Analyze("a plain paragraph about gardening")
		require.NotNil(t, result.Skills)
		require.Empty(t, result.Skills)
		require.Empty(t, result.InferredRole)
		require.Empty(t, result.InferredEmail)
		require.Equal(t, DefaultRole, result.RoleOrDefault())
	})
}

func TestDetectSkills(t *testing.T) {
	t.Run(`case insensitive and deduplicated check`, func(t *testing.T) {
		skills := DetectSkills("docker, DOCKER, Docker compose and kubernetes")
		require.Equal(t, []string{"Docker", "Kubernetes"}, skills)
	})

	t.Run(`substring containment check`, func(t *testing.T) {
		// JavaScript содержит Java, оба термина засчитываются
		require.Equal(t, []string{"Java", "JavaScript"}, DetectSkills("javascript"))
		require.Equal(t, []string{"Node"}, DetectSkills("Node.js"))
	})

	t.Run(`idempotent check`, func(t *testing.T) {
		require.Equal(t, DetectSkills(janeResume), DetectSkills(janeResume))
	})

	t.Run(`line order independent check`, func(t *testing.T) {
		lines := []string{"Python and SQL", "Git workflows", "AWS lambda"}
		forward := strings.Join(lines, "\n")
		backward := strings.Join([]string{lines[2], lines[0], lines[1]}, "\n")
		require.Equal(t, DetectSkills(forward), DetectSkills(backward))
	})
}

func TestInferRole(t *testing.T) {
	t.Run(`case of input ignored check`, func(t *testing.T) {
		for _, text := range []string{"Senior Software ENGINEER", "senior software engineer", "Senior Software Engineer"} {
			role, ok := InferRole(text)
			require.True(t, ok)
			require.Equal(t, "Engineer", role)
		}
	})

	t.Run(`first occurrence wins check`, func(t *testing.T) {
		role, ok := InferRole("Data ANALYST turned product manager")
		require.True(t, ok)
		require.Equal(t, "Analyst", role)
	})

	t.Run(`absent role check`, func(t *testing.T) {
		role, ok := InferRole("Chef and sommelier")
		require.False(t, ok)
		require.Empty(t, role)
	})
}

func TestInferEmail(t *testing.T) {
	t.Run(`first email check`, func(t *testing.T) {
		email, ok := InferEmail("mail: first.last+cv@mail-box.example.org or other@example.com")
		require.True(t, ok)
		require.Equal(t, "first.last+cv@mail-box.example.org", email)
	})

	t.Run(`absent email check`, func(t *testing.T) {
		_, ok := InferEmail("no contacts here @ all")
		require.False(t, ok)
	})
}
