package service

import (
	"time"

	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

// StatusNotifier delivers customer notifications for status changes.
// Implementations must absorb their own failures: the lifecycle
// mutation is already committed when this runs.
type StatusNotifier interface {
	NotifyStatusChange(order *entity.WorkOrder, note string)
}

type OrderService struct {
	orderRepo  repo.OrderRepository
	clientRepo repo.ClientRepository
	motoRepo   repo.MotorcycleRepository
	userRepo   repo.UserRepository
	notifier   StatusNotifier
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	clientRepo repo.ClientRepository,
	motoRepo repo.MotorcycleRepository,
	userRepo repo.UserRepository,
	notifier StatusNotifier,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		motoRepo:   motoRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

func (s *OrderService) List(filter entity.OrderFilter) ([]entity.WorkOrder, error) {
	return s.orderRepo.List(filter)
}

func (s *OrderService) Get(orderID int64) (*entity.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}
	return order, nil
}

// Create opens a new order in EN_ESPERA with its first history entry.
// Only managers and supervisors reach this (route-level gate); the
// cross-table checks run here.
func (s *OrderService) Create(input entity.CreateOrderInput) (*entity.WorkOrder, error) {
	client, err := s.clientRepo.GetByID(input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, entity.NotFound("the specified client does not exist")
	}

	moto, err := s.motoRepo.GetByID(input.MotorcycleID)
	if err != nil {
		return nil, err
	}
	if moto == nil {
		return nil, entity.NotFound("the specified motorcycle does not exist")
	}
	if moto.ClientID != input.ClientID {
		return nil, entity.InvalidInput("the motorcycle does not belong to the client")
	}

	if input.MechanicID != nil {
		mech, err := s.userRepo.GetEmployeeByID(*input.MechanicID)
		if err != nil {
			return nil, err
		}
		if mech == nil {
			return nil, entity.NotFound("the specified mechanic does not exist")
		}
	}

	order := &entity.WorkOrder{
		ClientID:           input.ClientID,
		MotorcycleID:       input.MotorcycleID,
		AssignedMechanicID: input.MechanicID,
		Status:             entity.StatusWaiting,
		Notes:              input.Notes,
	}

	if err := s.orderRepo.CreateWithInitialHistory(order, "Orden creada"); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(order.ID)
}

// ChangeStatus is the guarded transition: permission matrix, write-once
// exit timestamp, atomic history append, then a detached notification.
func (s *OrderService) ChangeStatus(orderID int64, input entity.ChangeStatusInput, actor entity.ActorContext) (*entity.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}

	status, ok := entity.ParseOrderStatus(input.Status)
	if !ok {
		return nil, entity.InvalidInput("invalid status %q", input.Status)
	}

	if actor.UserID == 0 || actor.Role == "" {
		return nil, entity.Unauthenticated("could not resolve the current user")
	}

	if err := Authorize(actor.Role, actor.EmployeeID, order.AssignedMechanicID, status); err != nil {
		return nil, err
	}

	// exit timestamp is set exactly once, on first arrival at a
	// terminal status
	var exitAt *time.Time
	if status.Terminal() && order.ExitAt == nil {
		now := time.Now().UTC()
		exitAt = &now
	}

	var note *string
	if input.Note != "" {
		note = &input.Note
	}

	if err := s.orderRepo.ChangeStatus(orderID, status, exitAt, note); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// fire and forget: delivery never delays or fails the response
	go s.notifier.NotifyStatusChange(updated, input.Note)

	return updated, nil
}

// Update reassigns the mechanic and/or replaces the intake notes.
func (s *OrderService) Update(orderID int64, input entity.UpdateOrderInput) (*entity.WorkOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}

	if input.MechanicID != nil {
		mech, err := s.userRepo.GetEmployeeByID(*input.MechanicID)
		if err != nil {
			return nil, err
		}
		if mech == nil {
			return nil, entity.NotFound("the specified mechanic does not exist")
		}
	}

	mechanicID := order.AssignedMechanicID
	if input.MechanicID != nil {
		mechanicID = input.MechanicID
	}

	if err := s.orderRepo.UpdateAssignment(orderID, mechanicID, input.Notes); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(orderID)
}

func (s *OrderService) History(orderID int64) ([]entity.StatusHistoryEntry, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}
	return s.orderRepo.History(orderID)
}

func (s *OrderService) AddPayment(orderID int64, input entity.PaymentInput) (*entity.Payment, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}

	method, ok := entity.ParsePaymentMethod(input.Method)
	if !ok {
		return nil, entity.InvalidInput("invalid payment method %q", input.Method)
	}
	if input.Amount <= 0 {
		return nil, entity.InvalidInput("amount must be positive")
	}

	payment := &entity.Payment{
		OrderID: orderID,
		Method:  method,
		Amount:  input.Amount,
	}
	if err := s.orderRepo.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *OrderService) Payments(orderID int64) ([]entity.Payment, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.NotFound("order not found")
	}
	return s.orderRepo.Payments(orderID)
}
