package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/catalog-api/pkg/jwt"
)

type memUsers struct {
	byEmail map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}

var testJWT = JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 5, Issuer: "catalog-api-test"}

func TestRegisterUser_SiempreCustomer(t *testing.T) {
	users := newMemUsers()
	uc := NewAuthUseCase(users, testJWT)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: " Ana@Example.com ", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Role)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.NotEqual(t, "12345678", users.byEmail["ana@example.com"].PasswordHash)
}

func TestRegisterUser_Validaciones(t *testing.T) {
	uc := NewAuthUseCase(newMemUsers(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "no-es-email", Password: "corta"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := NewAuthUseCase(newMemUsers(), testJWT)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.uz", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "A@B.uz", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConRol(t *testing.T) {
	uc := NewAuthUseCase(newMemUsers(), testJWT)
	ctx := context.Background()
	_, created, err := uc.EnsureSuperUser(ctx, dto.RegisterRequest{Email: "admin@choko.uz", Password: "supersecreto"})
	require.NoError(t, err)
	require.True(t, created)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@choko.uz", Password: "supersecreto"})
	require.NoError(t, err)
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleSuperUser, role)

	_, created, err = uc.EnsureSuperUser(ctx, dto.RegisterRequest{Email: "admin@choko.uz", Password: "supersecreto"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := NewAuthUseCase(newMemUsers(), testJWT)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "c@d.uz", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "c@d.uz", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@d.uz", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
