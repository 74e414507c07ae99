package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"floradesk/config"
	"floradesk/internal/domain/entity"
	"floradesk/internal/domain/service"
	"floradesk/internal/errors"
)

const defaultAccessTTL = 8 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := defaultAccessTTL
	if cfg.SecretKey.AccessTTL > 0 {
		ttl = cfg.SecretKey.AccessTTL
	}

	return &jwtService{secret: cfg.SecretKey.Access, ttl: ttl}, nil
}

// GenerateToken creates a signed HS256 token naming the actor and their role.
func (s *jwtService) GenerateToken(actor entity.Actor) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(actor.ID, 10),
		"role": actor.Role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks a token string and returns the actor it names.
func (s *jwtService) ValidateToken(tokenString string) (entity.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return entity.Actor{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Actor{}, errors.New("failed to parse token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return entity.Actor{}, errors.New("subject missing from token")
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return entity.Actor{}, errors.Wrap(err, "invalid subject in token")
	}

	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return entity.Actor{}, errors.New("invalid role in token")
	}

	return entity.Actor{ID: id, Role: role}, nil
}
