package repositories

import "recipe-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
}

type RecipeRepository interface {
	Create(recipe *entities.Recipe) error
	GetByID(userID, id uint) (*entities.Recipe, error)
	GetAllByUserID(userID uint) ([]entities.Recipe, error)
	Update(recipe *entities.Recipe) error
	AppendTags(recipe *entities.Recipe, tags []entities.Tag) error
	ReplaceTags(recipe *entities.Recipe, tags []entities.Tag) error
	Delete(userID, id uint) error
}

type TagRepository interface {
	GetOrCreate(userID uint, name string) (*entities.Tag, error)
	GetAllByUserID(userID uint) ([]entities.Tag, error)
}

type AuthTokenRepository interface {
	Create(token *entities.AuthToken) error
	GetByKey(key string) (*entities.AuthToken, error)
	GetByUserID(userID uint) (*entities.AuthToken, error)
	DeleteByUserID(userID uint) error
}
