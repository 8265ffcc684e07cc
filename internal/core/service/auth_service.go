package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/api/metrics"
	"github.com/menuhub/menu-server/internal/auth"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

const (
	minPasswordLength = 6
	// maxUsernameAttempts bounds the numbered suffixes tried after the plain
	// slug before falling back to a random suffix.
	maxUsernameAttempts = 10
)

// AuthService implements login, restaurant registration and admin provisioning.
type AuthService struct {
	admins      ports.AdminRepository
	restaurants ports.RestaurantRepository
	tokens      ports.TokenIssuer
	bcryptCost  int
	log         zerolog.Logger
}

func NewAuthService(
	admins ports.AdminRepository,
	restaurants ports.RestaurantRepository,
	tokens ports.TokenIssuer,
	bcryptCost int,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		admins:      admins,
		restaurants: restaurants,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		log:         log,
	}
}

func (s *AuthService) Login(ctx context.Context, kind domain.Role, email, password string) (string, error) {
	if !kind.Valid() {
		return "", domain.NewValidationError("kind", "kind must be one of: admin restaurant")
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	var (
		id   string
		hash string
		err  error
	)
	switch kind {
	case domain.RoleAdmin:
		var a *domain.Admin
		if a, err = s.admins.FindByEmail(ctx, email); err == nil {
			id, hash = a.ID, a.PasswordHash
		}
	case domain.RoleRestaurant:
		var r *domain.Restaurant
		if r, err = s.restaurants.FindByEmail(ctx, email); err == nil {
			id, hash = r.ID, r.PasswordHash
		}
	}

	if errors.Is(err, domain.ErrAdminNotFound) || errors.Is(err, domain.ErrRestaurantNotFound) {
		auth.BurnCompare(password)
		metrics.LoginsTotal.WithLabelValues(string(kind), "invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(kind), "error").Inc()
		return "", fmt.Errorf("login: %w", err)
	}

	if auth.ComparePassword(hash, password) != nil {
		metrics.LoginsTotal.WithLabelValues(string(kind), "invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Principal{ID: id, Role: kind})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(kind), "error").Inc()
		return "", fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(kind), "success").Inc()
	s.log.Info().Str("kind", string(kind)).Str("id", id).Msg("login succeeded")
	return token, nil
}

// RegisterRestaurant creates a restaurant and its login identity in one
// record and returns a restaurant token for it. The username is the slug of
// the name, suffixed with -2, -3, ... while the store reports it taken. A slug
// shaped like a restaurant id always gets a suffix.
func (s *AuthService) RegisterRestaurant(ctx context.Context, in ports.RegisterRestaurantInput) (string, *domain.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	in.Email = normalizeEmail(in.Email)

	verr := &domain.ValidationError{Fields: map[string]string{}}
	if in.Name == "" {
		verr.Fields["name"] = "name is required"
	}
	if in.Location == "" {
		verr.Fields["location"] = "location is required"
	}
	checkEmail(verr, in.Email)
	checkPassword(verr, in.Password)
	base := domain.Slugify(in.Name)
	if in.Name != "" && base == "" {
		verr.Fields["name"] = "name must contain letters or digits"
	}
	if len(verr.Fields) > 0 {
		return "", nil, verr
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("register restaurant: %w", err)
	}

	now := time.Now().UTC()
	restaurant := &domain.Restaurant{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Location:     in.Location,
		Status:       domain.StatusInactive,
		Menu:         []domain.MenuItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.createWithUniqueUsername(ctx, restaurant, base)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(domain.Principal{ID: created.ID, Role: domain.RoleRestaurant})
	if err != nil {
		return "", nil, fmt.Errorf("register restaurant: %w", err)
	}

	metrics.RestaurantsRegisteredTotal.Inc()
	s.log.Info().Str("restaurant_id", created.ID).Str("username", created.Username).Msg("restaurant registered")
	return token, created, nil
}

func (s *AuthService) createWithUniqueUsername(ctx context.Context, r *domain.Restaurant, base string) (*domain.Restaurant, error) {
	for attempt := 1; attempt <= maxUsernameAttempts+1; attempt++ {
		switch {
		case attempt == 1:
			if domain.ReservedUsername(base) {
				continue
			}
			r.Username = base
		case attempt <= maxUsernameAttempts:
			r.Username = fmt.Sprintf("%s-%d", base, attempt)
		default:
			r.Username = base + "-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
		}

		created, err := s.restaurants.Create(ctx, r)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrUsernameTaken) {
			if errors.Is(err, domain.ErrRestaurantExists) {
				return nil, err
			}
			return nil, fmt.Errorf("register restaurant: %w", err)
		}
		s.log.Debug().Str("username", r.Username).Msg("username taken, trying next")
	}
	return nil, domain.ErrUsernameTaken
}

// CreateAdmin provisions an administrator. Role defaults to admin.
func (s *AuthService) CreateAdmin(ctx context.Context, in ports.CreateAdminInput) (*domain.Admin, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if in.Role == "" {
		in.Role = domain.AdminRoleAdmin
	}

	verr := &domain.ValidationError{Fields: map[string]string{}}
	if in.Username == "" {
		verr.Fields["username"] = "username is required"
	}
	checkEmail(verr, in.Email)
	checkPassword(verr, in.Password)
	if !in.Role.Valid() {
		verr.Fields["role"] = "role must be one of: admin moderator"
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.admins.Create(ctx, &domain.Admin{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", created.ID).Str("role", string(created.Role)).Msg("admin created")
	return created, nil
}

var validate = validator.New()

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkEmail(verr *domain.ValidationError, email string) {
	if email == "" {
		verr.Fields["email"] = "email is required"
		return
	}
	if err := validate.Var(email, "email"); err != nil {
		verr.Fields["email"] = "email must be a valid email"
	}
}

func checkPassword(verr *domain.ValidationError, password string) {
	if len(password) < minPasswordLength {
		verr.Fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}
}
