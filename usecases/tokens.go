package usecases

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipe-server/entities"
	"recipe-server/repositories"
)

type TokenUseCase struct {
	Users     *UserUseCase
	TokenRepo repositories.AuthTokenRepository
}

func NewTokenUseCase(users *UserUseCase, tokenRepo repositories.AuthTokenRepository) *TokenUseCase {
	return &TokenUseCase{
		Users:     users,
		TokenRepo: tokenRepo,
	}
}

// IssueToken verifies credentials and returns the user's bearer token.
// Issuing is get-or-create: a user who already holds a token gets the
// same one back, so repeated logins do not invalidate other clients.
func (uc *TokenUseCase) IssueToken(email, password string) (string, error) {
	user, err := uc.Users.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	token, err := uc.TokenRepo.GetByUserID(user.ID)
	if err == nil {
		return token.Key, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	token = &entities.AuthToken{
		Key:    uuid.NewString(),
		UserID: user.ID,
	}
	if err := uc.TokenRepo.Create(token); err != nil {
		// lost a race against a concurrent login; the winner's token stands
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := uc.TokenRepo.GetByUserID(user.ID)
			if ferr != nil {
				return "", ferr
			}
			return existing.Key, nil
		}
		return "", err
	}

	return token.Key, nil
}

// ResolveToken maps a bearer key back to its user. Unknown keys and
// tokens held by inactive users both fail the same way.
func (uc *TokenUseCase) ResolveToken(key string) (*entities.User, error) {
	if key == "" {
		return nil, ErrInvalidToken
	}

	token, err := uc.TokenRepo.GetByKey(key)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.User.IsActive {
		return nil, ErrInvalidToken
	}

	return &token.User, nil
}
