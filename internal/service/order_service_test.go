package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "moteka/internal/domain"
)

// fakeOrderRepo keeps orders and their ledger in memory, mirroring the
// write-once exit semantics of the real storage.
type fakeOrderRepo struct {
	orders  map[int64]*entity.WorkOrder
	history map[int64][]entity.StatusHistoryEntry
	nextID  int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  map[int64]*entity.WorkOrder{},
		history: map[int64][]entity.StatusHistoryEntry{},
		nextID:  1,
	}
}

func (f *fakeOrderRepo) List(filter entity.OrderFilter) ([]entity.WorkOrder, error) {
	out := []entity.WorkOrder{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.WorkOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) CreateWithInitialHistory(order *entity.WorkOrder, note string) error {
	order.ID = f.nextID
	f.nextID++
	order.IntakeAt = time.Now()
	cp := *order
	f.orders[order.ID] = &cp
	f.history[order.ID] = append(f.history[order.ID], entity.StatusHistoryEntry{
		OrderID: order.ID, Status: order.Status, Note: &note, CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeOrderRepo) ChangeStatus(orderID int64, status entity.OrderStatus, exitAt *time.Time, note *string) error {
	o := f.orders[orderID]
	o.Status = status
	if o.ExitAt == nil {
		o.ExitAt = exitAt
	}
	f.history[orderID] = append(f.history[orderID], entity.StatusHistoryEntry{
		OrderID: orderID, Status: status, Note: note, CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeOrderRepo) UpdateAssignment(orderID int64, mechanicID *int64, notes *string) error {
	o := f.orders[orderID]
	o.AssignedMechanicID = mechanicID
	if notes != nil {
		o.Notes = notes
	}
	return nil
}

func (f *fakeOrderRepo) History(orderID int64) ([]entity.StatusHistoryEntry, error) {
	return f.history[orderID], nil
}

func (f *fakeOrderRepo) Payments(orderID int64) ([]entity.Payment, error) { return nil, nil }
func (f *fakeOrderRepo) CreatePayment(p *entity.Payment) error { return nil }

type fakeClientRepo struct {
	clients map[int64]*entity.Client
}

func (f *fakeClientRepo) List(q string) ([]entity.Client, error) { return nil, nil }
func (f *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	return f.clients[id], nil
}
func (f *fakeClientRepo) EmailTaken(email string, excludeID int64) (bool, error) {
	return false, nil
}
func (f *fakeClientRepo) Create(c *entity.Client) error { return nil }
func (f *fakeClientRepo) Update(c *entity.Client) error { return nil }
func (f *fakeClientRepo) Delete(id int64) error { return nil }
func (f *fakeClientRepo) HasMotorcycles(int64) (bool, error) { return false, nil }

type fakeMotoRepo struct {
	motos map[int64]*entity.Motorcycle
}

func (f *fakeMotoRepo) List(entity.MotorcycleFilter) ([]entity.Motorcycle, error) { return nil, nil }
func (f *fakeMotoRepo) GetByID(id int64) (*entity.Motorcycle, error) { return f.motos[id], nil }
func (f *fakeMotoRepo) PlateTaken(string, int64) (bool, error) { return false, nil }
func (f *fakeMotoRepo) VINTaken(string, int64) (bool, error) { return false, nil }
func (f *fakeMotoRepo) Create(*entity.Motorcycle) error { return nil }
func (f *fakeMotoRepo) Update(*entity.Motorcycle) error { return nil }
func (f *fakeMotoRepo) Delete(int64) error { return nil }
func (f *fakeMotoRepo) HasOrders(int64) (bool, error) { return false, nil }

type fakeUserRepo struct {
	employees map[int64]*entity.Employee
}

func (f *fakeUserRepo) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByID(int64) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List() ([]entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(*entity.User) error { return nil }
func (f *fakeUserRepo) Count() (int, error) { return 0, nil }
func (f *fakeUserRepo) UsernameTaken(string) (bool, error) { return false, nil }
func (f *fakeUserRepo) EmailTaken(string) (bool, error) { return false, nil }
func (f *fakeUserRepo) GetEmployeeByID(id int64) (*entity.Employee, error) {
	return f.employees[id], nil
}
func (f *fakeUserRepo) CreateEmployee(*entity.Employee) error { return nil }
func (f *fakeUserRepo) ListMechanics() ([]entity.Employee, error) { return nil, nil }

// recordingNotifier captures detached notification calls.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []entity.OrderStatus
	done  chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 8)}
}

func (n *recordingNotifier) NotifyStatusChange(order *entity.WorkOrder, note string) {
	n.mu.Lock()
	n.calls = append(n.calls, order.Status)
	n.mu.Unlock()
	n.done <- struct{}{}
}

func (n *recordingNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestOrderService() (*OrderService, *fakeOrderRepo, *recordingNotifier) {
	orders := newFakeOrderRepo()
	clients := &fakeClientRepo{clients: map[int64]*entity.Client{
		1: {ID: 1, Name: "Ana"},
	}}
	motos := &fakeMotoRepo{motos: map[int64]*entity.Motorcycle{
		1: {ID: 1, ClientID: 1},
		2: {ID: 2, ClientID: 99},
	}}
	users := &fakeUserRepo{employees: map[int64]*entity.Employee{
		7: {ID: 7, Name: "Luis", Active: true},
	}}
	notif := newRecordingNotifier()
	return NewOrderService(orders, clients, motos, users, notif), orders, notif
}

func seedOrder(repo *fakeOrderRepo, mechanicID *int64) int64 {
	order := &entity.WorkOrder{
		ClientID:           1,
		MotorcycleID:       1,
		AssignedMechanicID: mechanicID,
		Status:             entity.StatusWaiting,
	}
	_ = repo.CreateWithInitialHistory(order, "Orden creada")
	return order.ID
}

func manager() entity.ActorContext {
	return entity.ActorContext{UserID: 1, Role: entity.RoleManager}
}

func TestCreateOrder(t *testing.T) {
	t.Run("creates with initial ledger entry", func(t *testing.T) {
		svc, orders, _ := newTestOrderService()

		order, err := svc.Create(entity.CreateOrderInput{ClientID: 1, MotorcycleID: 1})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWaiting, order.Status)

		history, _ := orders.History(order.ID)
		require.Len(t, history, 1)
		assert.Equal(t, entity.StatusWaiting, history[0].Status)
		assert.Equal(t, "Orden creada", *history[0].Note)
	})

	t.Run("unknown client", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		_, err := svc.Create(entity.CreateOrderInput{ClientID: 42, MotorcycleID: 1})
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	})

	t.Run("motorcycle of another client", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		_, err := svc.Create(entity.CreateOrderInput{ClientID: 1, MotorcycleID: 2})
		assert.Equal(t, entity.KindInvalidInput, entity.KindOf(err))
	})

	t.Run("unknown mechanic", func(t *testing.T) {
		svc, _, _ := newTestOrderService()
		_, err := svc.Create(entity.CreateOrderInput{ClientID: 1, MotorcycleID: 1, MechanicID: ptr(99)})
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("success appends exactly one ledger entry and notifies", func(t *testing.T) {
		svc, orders, notif := newTestOrderService()
		id := seedOrder(orders, nil)

		updated, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "EN_REPARACION"}, manager())
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInRepair, updated.Status)
		assert.Nil(t, updated.ExitAt)

		history, _ := orders.History(id)
		assert.Len(t, history, 2)

		notif.wait(t)
		assert.Equal(t, 1, notif.count())
	})

	t.Run("unknown order wins over invalid status", func(t *testing.T) {
		svc, orders, notif := newTestOrderService()

		_, err := svc.ChangeStatus(999, entity.ChangeStatusInput{Status: "NOPE"}, manager())
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
		assert.Empty(t, orders.history[999])
		assert.Equal(t, 0, notif.count())
	})

	t.Run("invalid status on existing order", func(t *testing.T) {
		svc, orders, notif := newTestOrderService()
		id := seedOrder(orders, nil)

		_, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "TERMINADA"}, manager())
		assert.Equal(t, entity.KindInvalidInput, entity.KindOf(err))

		history, _ := orders.History(id)
		assert.Len(t, history, 1)
		assert.Equal(t, 0, notif.count())
	})

	t.Run("anonymous actor", func(t *testing.T) {
		svc, orders, _ := newTestOrderService()
		id := seedOrder(orders, nil)

		_, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "EN_REPARACION"}, entity.ActorContext{})
		assert.Equal(t, entity.KindUnauthenticated, entity.KindOf(err))
	})

	t.Run("mechanic denied on unassigned order", func(t *testing.T) {
		svc, orders, notif := newTestOrderService()
		id := seedOrder(orders, ptr(8))

		actor := entity.ActorContext{UserID: 5, Role: entity.RoleMechanic, EmployeeID: ptr(7)}
		_, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "EN_REPARACION"}, actor)
		assert.Equal(t, entity.KindForbidden, entity.KindOf(err))

		history, _ := orders.History(id)
		assert.Len(t, history, 1)
		assert.Equal(t, 0, notif.count())
	})

	t.Run("assigned mechanic cannot cancel", func(t *testing.T) {
		svc, orders, _ := newTestOrderService()
		id := seedOrder(orders, ptr(7))

		actor := entity.ActorContext{UserID: 5, Role: entity.RoleMechanic, EmployeeID: ptr(7)}
		_, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "CANCELADA"}, actor)
		assert.Equal(t, entity.KindForbidden, entity.KindOf(err))
	})

	t.Run("assigned mechanic can finish", func(t *testing.T) {
		svc, orders, notif := newTestOrderService()
		id := seedOrder(orders, ptr(7))

		actor := entity.ActorContext{UserID: 5, Role: entity.RoleMechanic, EmployeeID: ptr(7)}
		updated, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "FINALIZADA", Note: "listo"}, actor)
		require.NoError(t, err)
		assert.NotNil(t, updated.ExitAt)
		notif.wait(t)
	})

	t.Run("exit timestamp is write-once", func(t *testing.T) {
		svc, orders, notif := newTestOrderService()
		id := seedOrder(orders, nil)

		done, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "FINALIZADA"}, manager())
		require.NoError(t, err)
		require.NotNil(t, done.ExitAt)
		firstExit := *done.ExitAt
		notif.wait(t)

		time.Sleep(5 * time.Millisecond)
		reopened, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "EN_REPARACION"}, manager())
		require.NoError(t, err)
		notif.wait(t)

		cancelled, err := svc.ChangeStatus(id, entity.ChangeStatusInput{Status: "CANCELADA"}, manager())
		require.NoError(t, err)
		notif.wait(t)

		assert.Equal(t, firstExit, *reopened.ExitAt)
		assert.Equal(t, firstExit, *cancelled.ExitAt)

		history, _ := orders.History(id)
		assert.Len(t, history, 4)
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("reassigns mechanic", func(t *testing.T) {
		svc, orders, _ := newTestOrderService()
		id := seedOrder(orders, nil)

		updated, err := svc.Update(id, entity.UpdateOrderInput{MechanicID: ptr(7)})
		require.NoError(t, err)
		require.NotNil(t, updated.AssignedMechanicID)
		assert.Equal(t, int64(7), *updated.AssignedMechanicID)
	})

	t.Run("unknown mechanic", func(t *testing.T) {
		svc, orders, _ := newTestOrderService()
		id := seedOrder(orders, nil)

		_, err := svc.Update(id, entity.UpdateOrderInput{MechanicID: ptr(99)})
		assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
	})
}
