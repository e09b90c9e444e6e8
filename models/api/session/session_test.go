package sessionapimodels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManualForm(t *testing.T) {
	t.Run(`valid form check`, func(t *testing.T) {
		form := ManualForm{Name: "Jane", Email: "jane@example.com", Country: "us", YearsExperience: 3}
		require.Nil(t, form.Validate())
		record := form.ToRecord()
		require.Equal(t, "Jane", record.Name)
		require.Equal(t, 3, record.YearsExperience)
	})

	t.Run(`empty fields pass shape check`, func(t *testing.T) {
		require.Nil(t, ManualForm{}.Validate())
	})

	t.Run(`country code check`, func(t *testing.T) {
		err := ManualForm{Country: "USA"}.Validate()
		require.EqualError(t, err, "country must be a 2-letter ISO country code")
		err = ManualForm{Country: "1A"}.Validate()
		require.NotNil(t, err)
	})

	t.Run(`length check`, func(t *testing.T) {
		err := ManualForm{Name: strings.Repeat("a", 201)}.Validate()
		require.EqualError(t, err, "name must be at most 200 characters")
	})
}

func TestDeleteRequest(t *testing.T) {
	t.Run(`required check`, func(t *testing.T) {
		require.EqualError(t, DeleteRequest{}.Validate(), "email is required")
		require.Nil(t, DeleteRequest{Email: "jane@example.com"}.Validate())
	})
}

func TestResumeConfirmForm(t *testing.T) {
	t.Run(`record check`, func(t *testing.T) {
		form := ResumeConfirmForm{Email: "jane@example.com", Position: "Developer", TechStack: "Go", Consent: true}
		require.Nil(t, form.Validate())
		record := form.ToRecord()
		require.Equal(t, "", record.Name)
		require.True(t, record.Consent)
	})
}
