package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"
	authUtils "janconnect-be/utils"
)

type AuthService struct {
	store  *repository.Store
	tokens *TokenStore
	secret string
	now    func() time.Time
}

func NewAuthService(store *repository.Store, tokens *TokenStore, jwtSecret string) *AuthService {
	return &AuthService{store: store, tokens: tokens, secret: jwtSecret, now: time.Now}
}

type SignUpInput struct {
	Email      string          `json:"email" validate:"required,email"`
	Password   string          `json:"password" validate:"required,min=6"`
	UserType   models.UserType `json:"user_type" validate:"omitempty,oneof=user tender"`
	FullName   string          `json:"full_name" validate:"max=120"`
	FirstName  string          `json:"first_name" validate:"max=60"`
	LastName   string          `json:"last_name" validate:"max=60"`
	Phone      string          `json:"phone" validate:"max=20"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	PostalCode string          `json:"postal_code"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is what a successful sign-in hands back.
type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *models.Profile `json:"profile"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the credentials row and the profile sharing its id. If the
// profile cannot be written the credentials are removed again.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.Profile, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.UserType == "" {
		in.UserType = models.Citizen
	}
	return s.register(ctx, in)
}

func (s *AuthService) register(ctx context.Context, in SignUpInput) (*models.Profile, error) {
	now := s.now()
	user := &models.User{
		ID:        repository.NewID(),
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email %s already registered: %w", in.Email, ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := &models.Profile{
		ID:         user.ID,
		Email:      in.Email,
		FullName:   in.FullName,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		UserType:   in.UserType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Profiles.Create(ctx, profile); err != nil {
		if delErr := s.store.Users.Delete(context.WithoutCancel(ctx), user.ID); delErr != nil {
			log.Printf("remove user %s after failed profile insert: %v", user.ID, delErr)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

// SignIn checks credentials and issues a session token.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	user, err := s.store.Users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.ComparePassword(in.Password) {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.store.Profiles.FindByID(ctx, user.ID)
	if err != nil {
		return nil, lookup("profile", user.ID, err)
	}

	token, claims, err := authUtils.GenerateToken(s.secret, user.ID, string(profile.UserType), authUtils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	if err := s.store.Profiles.Update(ctx, user.ID, repository.Fields{"last_login_at": now}); err != nil {
		log.Printf("stamp last login of %s: %v", user.ID, err)
	} else {
		profile.LastLoginAt = &now
	}

	return &Session{Token: token, ExpiresAt: claims.ExpiresAt, Profile: profile}, nil
}

// SignOut denies the token id until the token expires.
func (s *AuthService) SignOut(ctx context.Context, jti string, exp time.Time) error {
	if jti == "" {
		return ErrAuthenticationRequired
	}
	return s.tokens.Revoke(ctx, jti, exp)
}

// Authenticate verifies a bearer token and rejects signed-out ones. The role
// comes from the stored profile, so demoting or deleting a user takes effect
// on tokens already issued.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*authUtils.Claims, error) {
	claims, err := authUtils.ParseToken(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
	}
	if claims.JTI != "" {
		revoked, err := s.tokens.IsRevoked(ctx, claims.JTI)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, fmt.Errorf("%w: token signed out", ErrAuthenticationRequired)
		}
	}

	profile, err := s.store.Profiles.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: account %s no longer exists", ErrAuthenticationRequired, claims.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	claims.UserType = string(profile.UserType)
	return claims, nil
}

// RequestPasswordReset returns a one-time reset token. Unknown emails return
// an empty token and no error so callers cannot probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return "", invalid("email", "email")
	}
	user, err := s.store.Users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}
	return s.tokens.IssueReset(ctx, user.ID)
}

type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (s *AuthService) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	userID, err := s.tokens.ConsumeReset(ctx, in.Token)
	if errors.Is(err, errResetTokenInvalid) {
		return invalid("token", "expired")
	}
	if err != nil {
		return err
	}

	user := &models.User{Password: in.Password}
	if err := user.HashPassword(); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.Users.UpdatePassword(ctx, userID, user.Password); err != nil {
		return lookup("user", userID, err)
	}
	return nil
}

// Session returns the profile of the signed-in caller.
func (s *AuthService) Session(ctx context.Context, actor models.Actor) (*models.Profile, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	profile, err := s.store.Profiles.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, lookup("profile", actor.UserID, err)
	}
	return profile, nil
}

// EnsureAdmin creates the administrator account on first start. Admins cannot
// sign up through the public endpoint.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}
	_, err := s.store.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load admin: %w", err)
	}
	_, err = s.register(ctx, SignUpInput{
		Email:    email,
		Password: password,
		UserType: models.Admin,
		FullName: "Administrator",
	})
	if err != nil {
		return err
	}
	log.Printf("Admin account %s created", email)
	return nil
}
