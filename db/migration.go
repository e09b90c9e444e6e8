package db

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "talent-scout-backend/models/db"
)

// код postgres duplicate_column
const pqDuplicateColumn = "42701"

// исходная схема, колонка country добавлена отдельной миграцией
const createCandidatesTable = `CREATE TABLE IF NOT EXISTS candidates (
	id SERIAL PRIMARY KEY,
	name TEXT, email TEXT, phone TEXT,
	exp INTEGER, position TEXT, location TEXT,
	tech_stack TEXT, consent TEXT, timestamp TIMESTAMPTZ
)`

const addCountryColumn = `ALTER TABLE candidates ADD COLUMN country TEXT`

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.Exec(createCandidatesTable).Error; err != nil {
		return errors.Wrap(err, "ошибка создания таблицы candidates")
	}
	if err := applyIgnoringDuplicateColumn(DB, addCountryColumn); err != nil {
		return errors.Wrap(err, "ошибка добавления колонки country")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// applyIgnoringDuplicateColumn ошибка duplicate_column означает, что миграция уже применена
func applyIgnoringDuplicateColumn(tx *gorm.DB, statement string) error {
	err := tx.Exec(statement).Error
	if IsDuplicateColumn(err) {
		log.WithField("statement", statement).Debug("миграция уже применена")
		return nil
	}
	return err
}

func IsDuplicateColumn(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqDuplicateColumn
	}
	return false
}
