package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "moteka/internal/domain"
)

type userSvcRepo struct {
	fakeUserRepo
	byID             map[int64]*entity.User
	createdEmployees []*entity.Employee
}

func (f *userSvcRepo) Create(u *entity.User) error {
	u.ID = int64(len(f.byID) + 1)
	f.byID[u.ID] = u
	return nil
}

func (f *userSvcRepo) GetByID(id int64) (*entity.User, error) { return f.byID[id], nil }

func (f *userSvcRepo) CreateEmployee(e *entity.Employee) error {
	e.ID = int64(100 + len(f.createdEmployees))
	f.createdEmployees = append(f.createdEmployees, e)
	return nil
}

type userCatalogRepo struct {
	stubCatalogRepo
	rolesByName map[string]*entity.Role
}

func (f *userCatalogRepo) GetRoleByName(name string) (*entity.Role, error) {
	return f.rolesByName[name], nil
}

func newUserFixture() (*UserService, *userSvcRepo) {
	users := &userSvcRepo{
		fakeUserRepo: fakeUserRepo{employees: map[int64]*entity.Employee{
			4: {ID: 4, Name: "Bea", Active: false},
			7: {ID: 7, Name: "Luis", Active: true},
		}},
		byID: map[int64]*entity.User{},
	}
	catalog := &userCatalogRepo{rolesByName: map[string]*entity.Role{
		entity.RoleMechanic: {ID: 3, Name: entity.RoleMechanic},
	}}
	return NewUserService(users, catalog), users
}

func TestCreateUser(t *testing.T) {
	base := entity.CreateUserInput{
		Username: "luis", Password: "secreto1", Role: entity.RoleMechanic,
	}

	t.Run("links an active employee", func(t *testing.T) {
		svc, _ := newUserFixture()

		input := base
		input.EmployeeID = ptr(7)
		user, err := svc.Create(input)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleMechanic, user.Role)
	})

	t.Run("rejects an inactive employee", func(t *testing.T) {
		svc, users := newUserFixture()

		input := base
		input.EmployeeID = ptr(4)
		_, err := svc.Create(input)
		assert.Equal(t, entity.KindInvalidInput, entity.KindOf(err))
		assert.Empty(t, users.byID)
	})

	t.Run("rejects an unknown employee", func(t *testing.T) {
		svc, _ := newUserFixture()

		input := base
		input.EmployeeID = ptr(99)
		_, err := svc.Create(input)
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	})

	t.Run("creates an employee from a name", func(t *testing.T) {
		svc, users := newUserFixture()

		input := base
		input.EmployeeName = "Marta"
		_, err := svc.Create(input)
		require.NoError(t, err)
		require.Len(t, users.createdEmployees, 1)
		assert.True(t, users.createdEmployees[0].Active)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _ := newUserFixture()

		input := base
		input.Role = "portero"
		_, err := svc.Create(input)
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	})
}
