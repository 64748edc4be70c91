package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
	utils "moteka/pkg"
)

type AuthService struct {
	userRepo    repo.UserRepository
	catalogRepo repo.CatalogRepository
}

func NewAuthService(userRepo repo.UserRepository, catalogRepo repo.CatalogRepository) *AuthService {
	return &AuthService{userRepo: userRepo, catalogRepo: catalogRepo}
}

func (s *AuthService) Login(input entity.LoginInput) (*entity.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, entity.Unauthenticated("invalid credentials")
	}

	token, err := utils.GenerateToken(user, user.RoleName)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token: token,
		User:  publicUser(user),
	}, nil
}

// Register creates an account. Open while the user table is empty so
// the very first admin can bootstrap itself; afterwards only managers
// may register users (enforced by the handler passing the actor).
func (s *AuthService) Register(input entity.RegisterInput, actor *entity.ActorContext) (*entity.UserResp, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		if actor == nil {
			return nil, entity.Unauthenticated("authentication required")
		}
		if actor.Role != entity.RoleManager {
			return nil, entity.Forbidden("only managers may register new users")
		}
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

	role, err := s.catalogRepo.GetRoleByID(input.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, entity.NotFound("the specified role does not exist")
	}

	if input.EmployeeID != nil {
		emp, err := s.userRepo.GetEmployeeByID(*input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, entity.NotFound("the specified employee does not exist")
		}
		if !emp.Active {
			return nil, entity.InvalidInput("the specified employee is inactive")
		}
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
		EmployeeID:   input.EmployeeID,
		RoleName:     role.Name,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := publicUser(user)
	return &resp, nil
}

func (s *AuthService) Me(userID int64) (*entity.UserResp, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.NotFound("user not found")
	}
	resp := publicUser(user)
	return &resp, nil
}

func publicUser(u *entity.User) entity.UserResp {
	return entity.UserResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.RoleName,
		Employee: u.Employee,
	}
}
