package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recipe-server/db"
	"recipe-server/entities"
)

type tagPgRepository struct {
	db db.Database
}

func NewTagPgRepository(database db.Database) TagRepository {
	return &tagPgRepository{db: database}
}

// GetOrCreate returns the tag named name owned by userID, creating it
// if absent. A concurrent identical request can win the insert; the
// (user_id, name) unique index turns that into a duplicate-key error
// and the existing row is fetched instead.
func (r *tagPgRepository) GetOrCreate(userID uint, name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.GetDB().Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = entities.Tag{UserID: userID, Name: name}
	if err := r.db.GetDB().Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing entities.Tag
			if ferr := r.db.GetDB().Where("user_id = ? AND name = ?", userID, name).First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagPgRepository) GetAllByUserID(userID uint) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.GetDB().Where("user_id = ?", userID).Order("name DESC").Find(&tags).Error
	return tags, err
}
