package candidatestore

import (
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"talent-scout-backend/db"
	dbmodels "talent-scout-backend/models/db"
)

// тест работает с реальной БД, без DB_HOST пропускается
func getInstance(t *testing.T) Provider {
	_ = godotenv.Load("../../../.env")
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST не задан, тест хранилища пропущен")
	}
	err := db.Connect(os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_NAME"),
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), false, true)
	require.Nil(t, err)
	return NewInstance(db.DB)
}

func TestCandidateStore(t *testing.T) {
	store := getInstance(t)
	email := "store-test-" + time.Now().Format("20060102150405.000000") + "@example.com"

	t.Run(`save and delete by email check`, func(t *testing.T) {
		rec := dbmodels.Candidate{
			Name:      "Jane Doe",
			Email:     email,
			Phone:     "650-253-0000",
			Exp:       3,
			Position:  "Developer",
			Location:  "Mountain View",
			Country:   "US",
			TechStack: "Go, SQL",
			Consent:   dbmodels.ConsentGiven,
			Timestamp: time.Now(),
		}
		id1, err := store.Save(rec)
		require.Nil(t, err)
		require.NotZero(t, id1)
		id2, err := store.Save(rec)
		require.Nil(t, err)
		require.NotEqual(t, id1, id2)

		deleted, err := store.DeleteByEmail(email)
		require.Nil(t, err)
		require.Equal(t, int64(2), deleted)

		deleted, err = store.DeleteByEmail(email)
		require.Nil(t, err)
		require.Zero(t, deleted)
	})

	t.Run(`retention purge check`, func(t *testing.T) {
		old := dbmodels.Candidate{Email: email, Consent: dbmodels.ConsentGiven, Timestamp: time.Now().AddDate(-1, 0, 0)}
		_, err := store.Save(old)
		require.Nil(t, err)
		deleted, err := store.DeleteOlderThan(time.Now().AddDate(0, -6, 0))
		require.Nil(t, err)
		require.GreaterOrEqual(t, deleted, int64(1))
	})
}
