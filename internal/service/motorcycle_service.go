package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type MotorcycleService struct {
	motoRepo    repo.MotorcycleRepository
	clientRepo  repo.ClientRepository
	catalogRepo repo.CatalogRepository
}

func NewMotorcycleService(
	motoRepo repo.MotorcycleRepository,
	clientRepo repo.ClientRepository,
	catalogRepo repo.CatalogRepository,
) *MotorcycleService {
	return &MotorcycleService{
		motoRepo:    motoRepo,
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *MotorcycleService) List(filter entity.MotorcycleFilter) ([]entity.Motorcycle, error) {
	return s.motoRepo.List(filter)
}

func (s *MotorcycleService) Get(id int64) (*entity.Motorcycle, error) {
	moto, err := s.motoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if moto == nil {
		return nil, entity.NotFound("motorcycle not found")
	}
	return moto, nil
}

func (s *MotorcycleService) Create(input entity.MotorcycleInput) (*entity.Motorcycle, error) {
	if err := s.validateReferences(input, 0); err != nil {
		return nil, err
	}

	moto := &entity.Motorcycle{
		ClientID:       input.ClientID,
		ModelID:        input.ModelID,
		Plate:          input.Plate,
		VIN:            input.VIN,
		Year:           input.Year,
		DisplacementCC: input.DisplacementCC,
		Color:          input.Color,
		MileageKM:      input.MileageKM,
		LastServiceAt:  input.LastServiceAt,
		Notes:          input.Notes,
	}
	if err := s.motoRepo.Create(moto); err != nil {
		return nil, err
	}
	return s.motoRepo.GetByID(moto.ID)
}

func (s *MotorcycleService) Update(id int64, input entity.MotorcycleInput) (*entity.Motorcycle, error) {
	moto, err := s.motoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if moto == nil {
		return nil, entity.NotFound("motorcycle not found")
	}

	// ownership is immutable once registered
	if input.ClientID != moto.ClientID {
		return nil, entity.InvalidInput("a motorcycle cannot be moved to another client")
	}

	if err := s.validateReferences(input, id); err != nil {
		return nil, err
	}

	moto.ModelID = input.ModelID
	moto.Plate = input.Plate
	moto.VIN = input.VIN
	moto.Year = input.Year
	moto.DisplacementCC = input.DisplacementCC
	moto.Color = input.Color
	moto.MileageKM = input.MileageKM
	moto.LastServiceAt = input.LastServiceAt
	moto.Notes = input.Notes

	if err := s.motoRepo.Update(moto); err != nil {
		return nil, err
	}
	return s.motoRepo.GetByID(id)
}

func (s *MotorcycleService) Delete(id int64) error {
	moto, err := s.motoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if moto == nil {
		return entity.NotFound("motorcycle not found")
	}

	has, err := s.motoRepo.HasOrders(id)
	if err != nil {
		return err
	}
	if has {
		return entity.Conflict("cannot delete a motorcycle with work orders")
	}

	return s.motoRepo.Delete(id)
}

func (s *MotorcycleService) validateReferences(input entity.MotorcycleInput, excludeID int64) error {
	client, err := s.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return entity.NotFound("the specified client does not exist")
	}

	if input.ModelID != nil {
		model, err := s.catalogRepo.GetModelByID(*input.ModelID)
		if err != nil {
			return err
		}
		if model == nil {
			return entity.NotFound("the specified model does not exist")
		}
	}

	if input.Plate != nil && *input.Plate != "" {
		taken, err := s.motoRepo.PlateTaken(*input.Plate, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return entity.Conflict("a motorcycle with plate %q already exists", *input.Plate)
		}
	}

	if input.VIN != nil && *input.VIN != "" {
		taken, err := s.motoRepo.VINTaken(*input.VIN, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return entity.Conflict("a motorcycle with VIN %q already exists", *input.VIN)
		}
	}

	return nil
}
