package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/chopp-api/internal/application/dto"
	"github.com/jhoicas/chopp-api/internal/domain"
	"github.com/jhoicas/chopp-api/pkg/jwt"
)

// Credentials usuario del formulario. PasswordHash (bcrypt) tiene prioridad sobre Password.
type Credentials struct {
	User         string
	Password     string
	PasswordHash string
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase verifica las credenciales del formulario y emite tokens.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Check compara usuario y contraseña. Sin usuario configurado rechaza todo.
func (uc *AuthUseCase) Check(username, password string) bool {
	if uc.creds.User == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.creds.User)) == 1
	var passOK bool
	switch {
	case uc.creds.PasswordHash != "":
		passOK = bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(password)) == nil
	case uc.creds.Password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(uc.creds.Password)) == 1
	}
	return userOK && passOK
}

// Login verifica las credenciales y devuelve un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Check(in.Username, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}

// VerifyToken valida un Bearer token y devuelve el usuario.
func (uc *AuthUseCase) VerifyToken(token string) (string, error) {
	user, err := jwt.Parse(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return user, nil
}
