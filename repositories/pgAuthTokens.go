package repositories

import (
	"recipe-server/db"
	"recipe-server/entities"
)

type authTokenPgRepository struct {
	db db.Database
}

func NewAuthTokenPgRepository(database db.Database) AuthTokenRepository {
	return &authTokenPgRepository{db: database}
}

func (r *authTokenPgRepository) Create(token *entities.AuthToken) error {
	return r.db.GetDB().Create(token).Error
}

func (r *authTokenPgRepository) GetByKey(key string) (*entities.AuthToken, error) {
	var token entities.AuthToken
	err := r.db.GetDB().Preload("User").Where("key = ?", key).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *authTokenPgRepository) GetByUserID(userID uint) (*entities.AuthToken, error) {
	var token entities.AuthToken
	err := r.db.GetDB().Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *authTokenPgRepository) DeleteByUserID(userID uint) error {
	return r.db.GetDB().Where("user_id = ?", userID).Delete(&entities.AuthToken{}).Error
}
