package repositories

import (
	"gorm.io/gorm/clause"

	"recipe-server/db"
	"recipe-server/entities"
)

type recipePgRepository struct {
	db db.Database
}

func NewRecipePgRepository(database db.Database) RecipeRepository {
	return &recipePgRepository{db: database}
}

func (r *recipePgRepository) Create(recipe *entities.Recipe) error {
	return r.db.GetDB().Omit("Tags").Create(recipe).Error
}

func (r *recipePgRepository) GetByID(userID, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.GetDB().Preload("Tags").Where("user_id = ? AND id = ?", userID, id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipePgRepository) GetAllByUserID(userID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	err := r.db.GetDB().Preload("Tags").Where("user_id = ?", userID).Order("id DESC").Find(&recipes).Error
	return recipes, err
}

func (r *recipePgRepository) Update(recipe *entities.Recipe) error {
	return r.db.GetDB().Omit("Tags").Save(recipe).Error
}

func (r *recipePgRepository) AppendTags(recipe *entities.Recipe, tags []entities.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.GetDB().Model(recipe).Association("Tags").Append(&tags)
}

func (r *recipePgRepository) ReplaceTags(recipe *entities.Recipe, tags []entities.Tag) error {
	return r.db.GetDB().Model(recipe).Association("Tags").Replace(&tags)
}

func (r *recipePgRepository) Delete(userID, id uint) error {
	// Select(clause.Associations) clears the recipe_tags join rows too
	recipe := entities.Recipe{ID: id}
	return r.db.GetDB().Select(clause.Associations).Where("user_id = ?", userID).Delete(&recipe).Error
}
