package candidatestore

import (
	"time"

	"gorm.io/gorm"
	dbmodels "talent-scout-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Candidate) (id uint, err error)
	DeleteByEmail(email string) (deleted int64, err error)
	DeleteOlderThan(before time.Time) (deleted int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Candidate) (uint, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) DeleteByEmail(email string) (int64, error) {
	tx := i.db.
		Where("email = ?", email).
		Delete(&dbmodels.Candidate{})
	return tx.RowsAffected, tx.Error
}

func (i impl) DeleteOlderThan(before time.Time) (int64, error) {
	tx := i.db.
		Where("timestamp < ?", before).
		Delete(&dbmodels.Candidate{})
	return tx.RowsAffected, tx.Error
}
