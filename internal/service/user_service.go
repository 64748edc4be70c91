package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
	utils "moteka/pkg"
)

type UserService struct {
	userRepo    repo.UserRepository
	catalogRepo repo.CatalogRepository
}

func NewUserService(userRepo repo.UserRepository, catalogRepo repo.CatalogRepository) *UserService {
	return &UserService{userRepo: userRepo, catalogRepo: catalogRepo}
}

func (s *UserService) List() ([]entity.UserResp, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	resp := make([]entity.UserResp, 0, len(users))
	for i := range users {
		resp = append(resp, publicUser(&users[i]))
	}
	return resp, nil
}

// Create registers an account by role name, linking an existing
// employee or creating one from a name when the role needs a staff
// record.
func (s *UserService) Create(input entity.CreateUserInput) (*entity.UserResp, error) {
	role, err := s.catalogRepo.GetRoleByName(input.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, entity.NotFound("role %q does not exist", input.Role)
	}

	taken, err := s.userRepo.UsernameTaken(input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, entity.Conflict("username %q already exists", input.Username)
	}

	if input.Email != nil && *input.Email != "" {
		taken, err := s.userRepo.EmailTaken(*input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, entity.Conflict("email %q is already registered", *input.Email)
		}
	}

	employeeID := input.EmployeeID
	if employeeID != nil {
		emp, err := s.userRepo.GetEmployeeByID(*employeeID)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, entity.NotFound("the specified employee does not exist")
		}
		if !emp.Active {
			return nil, entity.InvalidInput("the specified employee is inactive")
		}
	} else if input.EmployeeName != "" {
		emp := &entity.Employee{Name: input.EmployeeName, Active: true}
		if err := s.userRepo.CreateEmployee(emp); err != nil {
			return nil, err
		}
		employeeID = &emp.ID
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		RoleID:       role.ID,
		EmployeeID:   employeeID,
		RoleName:     role.Name,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}
	resp := publicUser(created)
	return &resp, nil
}

func (s *UserService) ListMechanics() ([]entity.Employee, error) {
	return s.userRepo.ListMechanics()
}
