package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type ClientService struct {
	clientRepo repo.ClientRepository
}

func NewClientService(clientRepo repo.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) List(q string) ([]entity.Client, error) {
	return s.clientRepo.List(q)
}

func (s *ClientService) Create(input entity.ClientInput) (*entity.Client, error) {
	if input.Email != nil && *input.Email != "" {
		taken, err := s.clientRepo.EmailTaken(*input.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, entity.Conflict("a client with email %q already exists", *input.Email)
		}
	}

	client := &entity.Client{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(id int64, input entity.ClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, entity.NotFound("client not found")
	}

	if input.Email != nil && *input.Email != "" {
		taken, err := s.clientRepo.EmailTaken(*input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, entity.Conflict("a client with email %q already exists", *input.Email)
		}
	}

	client.Name = input.Name
	client.Phone = input.Phone
	client.Email = input.Email
	client.Address = input.Address

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(id int64) error {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return entity.NotFound("client not found")
	}

	has, err := s.clientRepo.HasMotorcycles(id)
	if err != nil {
		return err
	}
	if has {
		return entity.Conflict("cannot delete a client with registered motorcycles")
	}

	return s.clientRepo.Delete(id)
}
