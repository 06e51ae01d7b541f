package usecases

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"recipe-server/db"
	"recipe-server/entities"
	"recipe-server/repositories"
)

// TagInput is a tag reference inside a recipe payload.
type TagInput struct {
	Name string
}

// RecipeInput carries every mutable recipe field for create/replace.
type RecipeInput struct {
	Title       string
	Description string
	TimeMinutes int
	Price       decimal.Decimal
	Link        string
	Tags        []TagInput
}

// RecipeUpdate carries the fields a partial update may change. Nil
// fields are left untouched. A non-nil Tags replaces the whole set.
type RecipeUpdate struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
	Tags        *[]TagInput
}

type RecipeUseCase struct {
	DB         db.Database
	RecipeRepo repositories.RecipeRepository
	TagRepo    repositories.TagRepository
}

func NewRecipeUseCase(database db.Database) *RecipeUseCase {
	return &RecipeUseCase{
		DB:         database,
		RecipeRepo: repositories.NewRecipePgRepository(database),
		TagRepo:    repositories.NewTagPgRepository(database),
	}
}

// ListRecipes retrieves the user's recipes, most recently created first.
func (uc *RecipeUseCase) ListRecipes(userID uint) ([]entities.Recipe, error) {
	return uc.RecipeRepo.GetAllByUserID(userID)
}

// GetRecipe retrieves one of the user's recipes. A recipe owned by a
// different user is reported as not found, never as forbidden.
func (uc *RecipeUseCase) GetRecipe(userID, id uint) (*entities.Recipe, error) {
	recipe, err := uc.RecipeRepo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// CreateRecipe creates a recipe for userID and attaches its tags,
// get-or-create per tag, as one transaction. The owner always comes
// from the authenticated caller, never from the payload.
func (uc *RecipeUseCase) CreateRecipe(userID uint, in RecipeInput) (*entities.Recipe, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	var created *entities.Recipe
	err := db.WithTx(uc.DB, func(tx db.Database) error {
		recipeRepo := repositories.NewRecipePgRepository(tx)
		tagRepo := repositories.NewTagPgRepository(tx)

		recipe := &entities.Recipe{
			UserID:      userID,
			Title:       in.Title,
			Description: in.Description,
			TimeMinutes: in.TimeMinutes,
			Price:       in.Price,
			Link:        in.Link,
		}
		if err := recipeRepo.Create(recipe); err != nil {
			return err
		}

		tags, err := resolveTags(tagRepo, userID, in.Tags)
		if err != nil {
			return err
		}
		if err := recipeRepo.AppendTags(recipe, tags); err != nil {
			return err
		}

		recipe.Tags = tags
		created = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRecipe applies a partial update to one of the user's recipes.
// Ownership is not a mutable field; callers cannot move a recipe to
// another user through any payload.
func (uc *RecipeUseCase) UpdateRecipe(userID, id uint, upd RecipeUpdate) (*entities.Recipe, error) {
	var updated *entities.Recipe
	err := db.WithTx(uc.DB, func(tx db.Database) error {
		recipeRepo := repositories.NewRecipePgRepository(tx)
		tagRepo := repositories.NewTagPgRepository(tx)

		recipe, err := recipeRepo.GetByID(userID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if upd.Title != nil {
			recipe.Title = *upd.Title
		}
		if upd.Description != nil {
			recipe.Description = *upd.Description
		}
		if upd.TimeMinutes != nil {
			recipe.TimeMinutes = *upd.TimeMinutes
		}
		if upd.Price != nil {
			recipe.Price = *upd.Price
		}
		if upd.Link != nil {
			recipe.Link = *upd.Link
		}

		if err := recipeRepo.Update(recipe); err != nil {
			return err
		}

		if upd.Tags != nil {
			tags, err := resolveTags(tagRepo, userID, *upd.Tags)
			if err != nil {
				return err
			}
			if err := recipeRepo.ReplaceTags(recipe, tags); err != nil {
				return err
			}
			recipe.Tags = tags
		}

		updated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReplaceRecipe overwrites all mutable fields of one of the user's
// recipes. An absent tag list leaves the current associations alone.
func (uc *RecipeUseCase) ReplaceRecipe(userID, id uint, in RecipeInput) (*entities.Recipe, error) {
	upd := RecipeUpdate{
		Title:       &in.Title,
		Description: &in.Description,
		TimeMinutes: &in.TimeMinutes,
		Price:       &in.Price,
		Link:        &in.Link,
	}
	if in.Tags != nil {
		upd.Tags = &in.Tags
	}
	return uc.UpdateRecipe(userID, id, upd)
}

// DeleteRecipe removes one of the user's recipes and its tag links.
func (uc *RecipeUseCase) DeleteRecipe(userID, id uint) error {
	if _, err := uc.GetRecipe(userID, id); err != nil {
		return err
	}
	return uc.RecipeRepo.Delete(userID, id)
}

// ListTags retrieves the user's tags ordered by descending name.
func (uc *RecipeUseCase) ListTags(userID uint) ([]entities.Tag, error) {
	return uc.TagRepo.GetAllByUserID(userID)
}

// GetOrCreateTag returns the user's tag with the given name, creating
// it if absent.
func (uc *RecipeUseCase) GetOrCreateTag(userID uint, name string) (*entities.Tag, error) {
	return uc.TagRepo.GetOrCreate(userID, name)
}

// resolveTags maps tag inputs to persisted tags scoped to userID, in
// input order. Duplicate names resolve to the same tag, which is only
// associated once.
func resolveTags(tagRepo repositories.TagRepository, userID uint, inputs []TagInput) ([]entities.Tag, error) {
	tags := make([]entities.Tag, 0, len(inputs))
	seen := make(map[uint]struct{}, len(inputs))
	for _, in := range inputs {
		tag, err := tagRepo.GetOrCreate(userID, in.Name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[tag.ID]; ok {
			continue
		}
		seen[tag.ID] = struct{}{}
		tags = append(tags, *tag)
	}
	return tags, nil
}
