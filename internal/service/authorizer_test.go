package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	entity "moteka/internal/domain"
)

func ptr(v int64) *int64 { return &v }

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		employeeID *int64
		assignedID *int64
		requested  entity.OrderStatus
		wantKind   entity.ErrorKind
		wantOK     bool
	}{
		{
			name: "manager can set any status", role: entity.RoleManager,
			requested: entity.StatusCancelled, wantOK: true,
		},
		{
			name: "supervisor can finish", role: entity.RoleSupervisor,
			requested: entity.StatusDone, wantOK: true,
		},
		{
			name: "supervisor can cancel", role: entity.RoleSupervisor,
			requested: entity.StatusCancelled, wantOK: true,
		},
		{
			name: "assigned mechanic can move to repair", role: entity.RoleMechanic,
			employeeID: ptr(7), assignedID: ptr(7),
			requested: entity.StatusInRepair, wantOK: true,
		},
		{
			name: "assigned mechanic can finish", role: entity.RoleMechanic,
			employeeID: ptr(7), assignedID: ptr(7),
			requested: entity.StatusDone, wantOK: true,
		},
		{
			name: "assigned mechanic cannot cancel", role: entity.RoleMechanic,
			employeeID: ptr(7), assignedID: ptr(7),
			requested: entity.StatusCancelled, wantKind: entity.KindForbidden,
		},
		{
			name: "mechanic cannot touch another mechanic's order", role: entity.RoleMechanic,
			employeeID: ptr(7), assignedID: ptr(8),
			requested: entity.StatusInRepair, wantKind: entity.KindForbidden,
		},
		{
			name: "mechanic cannot touch an unassigned order", role: entity.RoleMechanic,
			employeeID: ptr(7), assignedID: nil,
			requested: entity.StatusInRepair, wantKind: entity.KindForbidden,
		},
		{
			name: "mechanic without staff link is denied", role: entity.RoleMechanic,
			employeeID: nil, assignedID: ptr(7),
			requested: entity.StatusInRepair, wantKind: entity.KindForbidden,
		},
		{
			name: "unknown role is denied", role: "recepcionista",
			requested: entity.StatusInRepair, wantKind: entity.KindForbidden,
		},
		{
			name: "empty role is denied", role: "",
			requested: entity.StatusDone, wantKind: entity.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.role, tt.employeeID, tt.assignedID, tt.requested)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, entity.KindOf(err))
		})
	}
}
