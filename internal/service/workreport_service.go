package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type WorkReportService struct {
	reportRepo repo.WorkReportRepository
	orderRepo  repo.OrderRepository
	userRepo   repo.UserRepository
}

func NewWorkReportService(
	reportRepo repo.WorkReportRepository,
	orderRepo repo.OrderRepository,
	userRepo repo.UserRepository,
) *WorkReportService {
	return &WorkReportService{
		reportRepo: reportRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
	}
}

// Create files a technician report against an order. Mechanics may only
// report on orders assigned to them; managers and supervisors may
// report on any order as long as they are linked to a staff record.
func (s *WorkReportService) Create(input entity.WorkReportInput, actor entity.ActorContext) (*entity.WorkReport, error) {
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}

	if actor.EmployeeID == nil {
		return nil, entity.Forbidden("your account is not linked to a staff record")
	}
	if actor.Role == entity.RoleMechanic {
		if order.AssignedMechanicID == nil || *order.AssignedMechanicID != *actor.EmployeeID {
			return nil, entity.Forbidden("cannot report on an order not assigned to you")
		}
	}

	emp, err := s.userRepo.GetEmployeeByID(*actor.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, entity.Forbidden("your account is not linked to a staff record")
	}

	rep := &entity.WorkReport{
		OrderID:      input.OrderID,
		MechanicID:   emp.ID,
		Description:  input.Description,
		MechanicName: &emp.Name,
	}

	// snapshot the surrounding context so exports survive catalog edits
	if order.Client != nil {
		rep.ClientName = &order.Client.Name
	}
	if order.Motorcycle != nil {
		rep.Plate = order.Motorcycle.Plate
		rep.VIN = order.Motorcycle.VIN
		rep.BrandName = order.Motorcycle.BrandName
		if order.Motorcycle.Model != nil {
			rep.ModelName = &order.Motorcycle.Model.Name
		}
	}

	if err := s.reportRepo.Create(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *WorkReportService) List() ([]entity.WorkReport, error) {
	return s.reportRepo.List()
}

func (s *WorkReportService) ListByOrder(orderID int64) ([]entity.WorkReport, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}
	return s.reportRepo.ListByOrder(orderID)
}
