package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type CatalogService struct {
	catalogRepo repo.CatalogRepository
}

func NewCatalogService(catalogRepo repo.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListBrands(q string) ([]entity.Brand, error) {
	return s.catalogRepo.ListBrands(q)
}

func (s *CatalogService) CreateBrand(input entity.BrandInput) (*entity.Brand, error) {
	taken, err := s.catalogRepo.BrandNameTaken(input.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, entity.Conflict("brand %q already exists", input.Name)
	}

	brand := &entity.Brand{Name: input.Name}
	if err := s.catalogRepo.CreateBrand(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) UpdateBrand(id int64, input entity.BrandInput) (*entity.Brand, error) {
	brand, err := s.catalogRepo.GetBrandByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, entity.NotFound("brand not found")
	}

	taken, err := s.catalogRepo.BrandNameTaken(input.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, entity.Conflict("brand %q already exists", input.Name)
	}

	brand.Name = input.Name
	if err := s.catalogRepo.UpdateBrand(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(id int64) error {
	brand, err := s.catalogRepo.GetBrandByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return entity.NotFound("brand not found")
	}

	has, err := s.catalogRepo.BrandHasModels(id)
	if err != nil {
		return err
	}
	if has {
		return entity.Conflict("cannot delete a brand with registered models")
	}

	return s.catalogRepo.DeleteBrand(id)
}

func (s *CatalogService) ListModels(brandID int64, q string) ([]entity.MotoModel, error) {
	return s.catalogRepo.ListModels(brandID, q)
}

func (s *CatalogService) CreateModel(input entity.MotoModelInput) (*entity.MotoModel, error) {
	brand, err := s.catalogRepo.GetBrandByID(input.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, entity.NotFound("the specified brand does not exist")
	}

	taken, err := s.catalogRepo.ModelNameTaken(input.BrandID, input.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, entity.Conflict("model %q already exists for this brand", input.Name)
	}

	model := &entity.MotoModel{BrandID: input.BrandID, Name: input.Name}
	if err := s.catalogRepo.CreateModel(model); err != nil {
		return nil, err
	}
	model.BrandName = &brand.Name
	return model, nil
}

func (s *CatalogService) UpdateModel(id int64, input entity.MotoModelInput) (*entity.MotoModel, error) {
	model, err := s.catalogRepo.GetModelByID(id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, entity.NotFound("model not found")
	}

	brand, err := s.catalogRepo.GetBrandByID(input.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, entity.NotFound("the specified brand does not exist")
	}

	taken, err := s.catalogRepo.ModelNameTaken(input.BrandID, input.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, entity.Conflict("model %q already exists for this brand", input.Name)
	}

	model.BrandID = input.BrandID
	model.Name = input.Name
	if err := s.catalogRepo.UpdateModel(model); err != nil {
		return nil, err
	}
	model.BrandName = &brand.Name
	return model, nil
}

func (s *CatalogService) DeleteModel(id int64) error {
	model, err := s.catalogRepo.GetModelByID(id)
	if err != nil {
		return err
	}
	if model == nil {
		return entity.NotFound("model not found")
	}

	has, err := s.catalogRepo.ModelHasMotorcycles(id)
	if err != nil {
		return err
	}
	if has {
		return entity.Conflict("cannot delete a model with registered motorcycles")
	}

	return s.catalogRepo.DeleteModel(id)
}

func (s *CatalogService) ListRoles() ([]entity.Role, error) {
	return s.catalogRepo.ListRoles()
}

func (s *CatalogService) CreateRole(name string) (*entity.Role, error) {
	if name == "" {
		return nil, entity.InvalidInput("role name is required")
	}

	existing, err := s.catalogRepo.GetRoleByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.Conflict("role %q already exists", name)
	}

	role := &entity.Role{Name: name}
	if err := s.catalogRepo.CreateRole(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *CatalogService) DeleteRole(id int64) error {
	role, err := s.catalogRepo.GetRoleByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return entity.NotFound("role not found")
	}

	switch role.Name {
	case entity.RoleManager, entity.RoleSupervisor, entity.RoleMechanic:
		return entity.Conflict("built-in roles cannot be deleted")
	}

	has, err := s.catalogRepo.RoleHasUsers(id)
	if err != nil {
		return err
	}
	if has {
		return entity.Conflict("cannot delete a role assigned to users")
	}

	return s.catalogRepo.DeleteRole(id)
}
