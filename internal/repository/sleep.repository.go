package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SleepRepository interface {
	Upsert(log *models.SleepLog) error
	FindByUserIDAndDate(userID uint, date time.Time) (*models.SleepLog, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.SleepLog, error)
	Delete(userID uint, date time.Time) error
	ExistsForDate(userID uint, date time.Time) (bool, error)
}

type sleepRepository struct {
	db *gorm.DB
}

func NewSleepRepository(db *gorm.DB) SleepRepository {
	return &sleepRepository{db}
}

// Upsert writes the sleep entry for (user, date). A second write for the same
// date updates hours and quality in place; the unique index on the pair
// guarantees no duplicate row even under concurrent writes.
func (r *sleepRepository) Upsert(log *models.SleepLog) error {
	log.SleepDate = dayStart(log.SleepDate)
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "sleep_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours_slept", "sleep_quality", "updated_at"}),
	}).Create(log).Error
}

func (r *sleepRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.SleepLog, error) {
	var log models.SleepLog
	err := r.db.Where("user_id = ? AND sleep_date = ?", userID, dayStart(date)).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *sleepRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.SleepLog, error) {
	var logs []models.SleepLog
	err := r.db.Where("user_id = ? AND sleep_date >= ? AND sleep_date < ?", userID, startDate, endDate).
		Order("sleep_date DESC").
		Find(&logs).Error
	return logs, err
}

// Delete removes the entry for (user, date). The delete is unscoped: a
// soft-deleted row would still occupy the unique (user_id, sleep_date) slot
// and block re-logging the date through Upsert.
func (r *sleepRepository) Delete(userID uint, date time.Time) error {
	result := r.db.Unscoped().
		Where("user_id = ? AND sleep_date = ?", userID, dayStart(date)).
		Delete(&models.SleepLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sleepRepository) ExistsForDate(userID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.SleepLog{}).
		Where("user_id = ? AND sleep_date = ?", userID, dayStart(date)).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
