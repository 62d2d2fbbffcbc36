package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/purplecow/recruiting/internal/domain/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const ctxUserIDKey = "user_id"

type authClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	existing, err := s.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return s.dbError(c, err)
	}
	if existing != nil {
		return fail(c, fiber.StatusConflict, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Email:          req.Email,
		HashedPassword: string(hashed),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
	}
	if err := s.users.Add(c.Context(), &user); err != nil {
		return s.dbError(c, err)
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return success(c, fiber.StatusCreated, fiber.Map{
		"user_id":      user.UserID,
		"access_token": token,
	})
}

func (s *Server) login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	user, err := s.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return s.dbError(c, err)
	}
	if user == nil || !user.IsActive {
		return fail(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return fail(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := s.users.UpdateLastLogin(c.Context(), user.UserID); err != nil {
		log.Errorf("failed to update last login for user %v: %v", user.UserID, err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return success(c, fiber.StatusOK, fiber.Map{
		"user_id":      user.UserID,
		"access_token": token,
	})
}

func (s *Server) issueToken(user *models.User) (string, error) {
	ttl := time.Duration(s.cfg.TokenTTL) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := authClaims{
		UserID: user.UserID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Server) authMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			return fail(c, fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(ctxUserIDKey, claims.UserID)
		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
