package auth

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Account credencial del directorio de cuentas. La contraseña se guarda como
// hash bcrypt; AccountID vacío usa el login.
type Account struct {
	Login        string `mapstructure:"login"`
	AccountID    string `mapstructure:"account_id"`
	DisplayName  string `mapstructure:"display_name"`
	PasswordHash string `mapstructure:"password_hash"`
	Premium      bool   `mapstructure:"premium"`
}

// Directory directorio de cuentas en memoria, indexado por login.
// No es autenticación de producción: es una lista fija cargada al arrancar.
type Directory struct {
	byLogin map[string]Account
}

// NewDirectory valida e indexa las cuentas.
func NewDirectory(accounts []Account) (*Directory, error) {
	d := &Directory{byLogin: make(map[string]Account, len(accounts))}
	for i, a := range accounts {
		login := normalizeLogin(a.Login)
		if login == "" || a.PasswordHash == "" {
			return nil, fmt.Errorf("%w: cuenta #%d sin login o password_hash", domain.ErrInvalidInput, i+1)
		}
		if _, dup := d.byLogin[login]; dup {
			return nil, fmt.Errorf("%w: login duplicado %q", domain.ErrInvalidInput, login)
		}
		a.Login = login
		if a.AccountID == "" {
			a.AccountID = login
		}
		if a.DisplayName == "" {
			a.DisplayName = a.Login
		}
		d.byLogin[login] = a
	}
	return d, nil
}

// LoadAccounts lee el directorio desde un archivo YAML/JSON con la clave "accounts".
func LoadAccounts(path string) (*Directory, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("auth: leer %s: %w", path, err)
	}
	var accounts []Account
	if err := v.UnmarshalKey("accounts", &accounts); err != nil {
		return nil, fmt.Errorf("auth: decodificar cuentas: %w", err)
	}
	return NewDirectory(accounts)
}

// Len cantidad de cuentas.
func (d *Directory) Len() int { return len(d.byLogin) }

func (d *Directory) lookup(login string) (Account, bool) {
	a, ok := d.byLogin[normalizeLogin(login)]
	return a, ok
}

func normalizeLogin(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AuthUseCase puerta de sesión: verifica credenciales y emite el token.
type AuthUseCase struct {
	dir    *Directory
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(dir *Directory, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{dir: dir, jwtCfg: jwtCfg}
}

// Login verifica login/password, genera JWT y retorna token + sesión.
// Login desconocido y contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Login) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	acc, ok := uc.dir.lookup(in.Login)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	session := entity.Session{AccountID: acc.AccountID, DisplayName: acc.DisplayName, Premium: acc.Premium}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		AccountID:   session.AccountID,
		DisplayName: session.DisplayName,
		Premium:     session.Premium,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Session: ToSessionResponse(session),
	}, nil
}

// ToSessionResponse sesión en respuestas.
func ToSessionResponse(s entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		AccountID:   s.AccountID,
		DisplayName: s.DisplayName,
		Premium:     s.Premium,
		ItemLimit:   s.ItemLimit(),
	}
}
