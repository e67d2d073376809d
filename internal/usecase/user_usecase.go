package usecase

import (
	"context"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/internal/infrastructure/firebase"
	"replyrush/pkg/errors"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient *firebase.FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

// EnsureProfile returns the merchant profile for an authenticated uid,
// creating it from the Firebase account on first sign-in.
func (uc *UserUseCase) EnsureProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	email, err := uc.authClient.GetUserEmail(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to look up Firebase account", err)
	}

	user = &entity.User{
		ID:    uid,
		Email: email,
	}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
