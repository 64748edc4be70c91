package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type ToolService struct {
	toolRepo repo.ToolRepository
}

func NewToolService(toolRepo repo.ToolRepository) *ToolService {
	return &ToolService{toolRepo: toolRepo}
}

// List filters by status when the value is recognized and ignores it
// otherwise, matching the lenient read-side filtering used elsewhere.
func (s *ToolService) List(statusFilter string) ([]entity.Tool, error) {
	var status *entity.ToolStatus
	if parsed, ok := entity.ParseToolStatus(statusFilter); ok {
		status = &parsed
	}
	return s.toolRepo.List(status)
}

func (s *ToolService) Get(id int64) (*entity.Tool, error) {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, entity.NotFound("tool not found")
	}
	return tool, nil
}

func (s *ToolService) Create(input entity.ToolInput) (*entity.Tool, error) {
	status := entity.ToolOperational
	if input.Status != "" {
		parsed, ok := entity.ParseToolStatus(input.Status)
		if !ok {
			return nil, entity.InvalidInput("invalid tool status %q", input.Status)
		}
		status = parsed
	}

	quantity := 1
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, entity.InvalidInput("quantity cannot be negative")
		}
		quantity = *input.Quantity
	}

	tool := &entity.Tool{
		Name:        input.Name,
		Description: input.Description,
		Quantity:    quantity,
		Status:      status,
		Location:    input.Location,
		BrandModel:  input.BrandModel,
	}
	if err := s.toolRepo.Create(tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (s *ToolService) Update(id int64, input entity.ToolUpdateInput) (*entity.Tool, error) {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, entity.NotFound("tool not found")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, entity.InvalidInput("name cannot be empty")
		}
		tool.Name = *input.Name
	}
	if input.Description != nil {
		tool.Description = input.Description
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, entity.InvalidInput("quantity cannot be negative")
		}
		tool.Quantity = *input.Quantity
	}
	if input.Status != nil {
		parsed, ok := entity.ParseToolStatus(*input.Status)
		if !ok {
			return nil, entity.InvalidInput("invalid tool status %q", *input.Status)
		}
		tool.Status = parsed
	}
	if input.Location != nil {
		tool.Location = input.Location
	}
	if input.BrandModel != nil {
		tool.BrandModel = input.BrandModel
	}

	if err := s.toolRepo.Update(tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (s *ToolService) Delete(id int64) error {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tool == nil {
		return entity.NotFound("tool not found")
	}
	return s.toolRepo.Delete(id)
}
