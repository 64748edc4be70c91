package service

import (
	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type DashboardService struct {
	dashRepo repo.DashboardRepository
}

func NewDashboardService(dashRepo repo.DashboardRepository) *DashboardService {
	return &DashboardService{dashRepo: dashRepo}
}

func (s *DashboardService) Summary() (*entity.DashboardSummary, error) {
	today, err := s.dashRepo.TodayCounts()
	if err != nil {
		return nil, err
	}
	activeClients, err := s.dashRepo.ActiveClients()
	if err != nil {
		return nil, err
	}
	revenue, err := s.dashRepo.RevenueToday()
	if err != nil {
		return nil, err
	}
	mechanicsTotal, err := s.dashRepo.MechanicsTotal()
	if err != nil {
		return nil, err
	}
	mechanicsBusy, err := s.dashRepo.MechanicsBusy()
	if err != nil {
		return nil, err
	}
	activeOrders, err := s.dashRepo.ActiveOrdersToday()
	if err != nil {
		return nil, err
	}

	return &entity.DashboardSummary{
		Today:          today,
		ActiveClients:  activeClients,
		RevenueToday:   revenue,
		MechanicsTotal: mechanicsTotal,
		MechanicsBusy:  mechanicsBusy,
		ActiveOrders:   activeOrders,
	}, nil
}
