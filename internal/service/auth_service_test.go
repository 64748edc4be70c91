package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "moteka/internal/domain"
	utils "moteka/pkg"
)

type authUserRepo struct {
	fakeUserRepo
	users     map[string]*entity.User
	userCount int
	created   []*entity.User
}

func (f *authUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *authUserRepo) Count() (int, error) { return f.userCount, nil }

func (f *authUserRepo) Create(u *entity.User) error {
	u.ID = int64(len(f.created) + 1)
	f.created = append(f.created, u)
	return nil
}

type stubCatalogRepo struct {
	roles map[int64]*entity.Role
}

func (f *stubCatalogRepo) ListBrands(string) ([]entity.Brand, error) { return nil, nil }
func (f *stubCatalogRepo) GetBrandByID(int64) (*entity.Brand, error) { return nil, nil }
func (f *stubCatalogRepo) BrandNameTaken(string, int64) (bool, error) { return false, nil }
func (f *stubCatalogRepo) CreateBrand(*entity.Brand) error { return nil }
func (f *stubCatalogRepo) UpdateBrand(*entity.Brand) error { return nil }
func (f *stubCatalogRepo) DeleteBrand(int64) error { return nil }
func (f *stubCatalogRepo) BrandHasModels(int64) (bool, error) { return false, nil }
func (f *stubCatalogRepo) ListModels(int64, string) ([]entity.MotoModel, error) {
	return nil, nil
}
func (f *stubCatalogRepo) GetModelByID(int64) (*entity.MotoModel, error) { return nil, nil }
func (f *stubCatalogRepo) ModelNameTaken(int64, string, int64) (bool, error) { return false, nil }
func (f *stubCatalogRepo) CreateModel(*entity.MotoModel) error { return nil }
func (f *stubCatalogRepo) UpdateModel(*entity.MotoModel) error { return nil }
func (f *stubCatalogRepo) DeleteModel(int64) error { return nil }
func (f *stubCatalogRepo) ModelHasMotorcycles(int64) (bool, error) { return false, nil }
func (f *stubCatalogRepo) ListRoles() ([]entity.Role, error) { return nil, nil }
func (f *stubCatalogRepo) GetRoleByID(id int64) (*entity.Role, error) { return f.roles[id], nil }
func (f *stubCatalogRepo) GetRoleByName(string) (*entity.Role, error) { return nil, nil }
func (f *stubCatalogRepo) CreateRole(*entity.Role) error { return nil }
func (f *stubCatalogRepo) DeleteRole(int64) error { return nil }
func (f *stubCatalogRepo) RoleHasUsers(int64) (bool, error) { return false, nil }

func newAuthFixture(userCount int) (*AuthService, *authUserRepo) {
	users := &authUserRepo{
		fakeUserRepo: fakeUserRepo{employees: map[int64]*entity.Employee{
			7: {ID: 7, Name: "Luis", Active: true},
			8: {ID: 8, Name: "Bea", Active: false},
		}},
		users:     map[string]*entity.User{},
		userCount: userCount,
	}
	catalog := &stubCatalogRepo{roles: map[int64]*entity.Role{
		1: {ID: 1, Name: entity.RoleManager},
		3: {ID: 3, Name: entity.RoleMechanic},
	}}
	return NewAuthService(users, catalog), users
}

func TestLogin(t *testing.T) {
	svc, users := newAuthFixture(1)

	hash, err := utils.HashPassword("secreto1")
	require.NoError(t, err)
	users.users["ana"] = &entity.User{
		ID: 1, Username: "ana", PasswordHash: hash, RoleName: entity.RoleManager,
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		resp, err := svc.Login(entity.LoginInput{Username: "ana", Password: "secreto1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "ana", resp.User.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(entity.LoginInput{Username: "ana", Password: "nope"})
		assert.Equal(t, entity.KindUnauthenticated, entity.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(entity.LoginInput{Username: "ghost", Password: "nope"})
		assert.Equal(t, entity.KindUnauthenticated, entity.KindOf(err))
	})
}

func TestRegisterBootstrap(t *testing.T) {
	input := entity.RegisterInput{Username: "admin", Password: "secreto1", RoleID: 1}

	t.Run("first account needs no actor", func(t *testing.T) {
		svc, users := newAuthFixture(0)

		user, err := svc.Register(input, nil)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleManager, user.Role)
		assert.Len(t, users.created, 1)
	})

	t.Run("later anonymous registration is rejected", func(t *testing.T) {
		svc, _ := newAuthFixture(1)

		_, err := svc.Register(input, nil)
		assert.Equal(t, entity.KindUnauthenticated, entity.KindOf(err))
	})

	t.Run("non-manager actor is rejected", func(t *testing.T) {
		svc, _ := newAuthFixture(1)

		actor := entity.ActorContext{UserID: 2, Role: entity.RoleMechanic}
		_, err := svc.Register(input, &actor)
		assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	})

	t.Run("manager actor may register", func(t *testing.T) {
		svc, _ := newAuthFixture(1)

		actor := entity.ActorContext{UserID: 1, Role: entity.RoleManager}
		reg := entity.RegisterInput{Username: "luis", Password: "secreto1", RoleID: 3}
		user, err := svc.Register(reg, &actor)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleMechanic, user.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _ := newAuthFixture(0)

		reg := entity.RegisterInput{Username: "x", Password: "secreto1", RoleID: 9}
		_, err := svc.Register(reg, nil)
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	})

	t.Run("linked employee is validated", func(t *testing.T) {
		svc, users := newAuthFixture(0)

		reg := entity.RegisterInput{Username: "x", Password: "secreto1", RoleID: 3, EmployeeID: ptr(99)}
		_, err := svc.Register(reg, nil)
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))

		reg.EmployeeID = ptr(8)
		_, err = svc.Register(reg, nil)
		assert.Equal(t, entity.KindInvalidInput, entity.KindOf(err))
		assert.Empty(t, users.created)

		reg.EmployeeID = ptr(7)
		user, err := svc.Register(reg, nil)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleMechanic, user.Role)
	})
}
