package service

import (
	entity "moteka/internal/domain"
)

// Authorize decides whether an actor may move an order to the requested
// status. Pure function over the claim role, the requester's employee
// link and the order's assignment, so the permission matrix can be
// tested without storage.
//
// Rules:
//   - mechanics may only touch orders assigned to them, and may never
//     cancel, even when assigned
//   - managers and supervisors may set any status
//   - every other role is denied
func Authorize(role string, requesterEmployeeID, assignedMechanicID *int64, requested entity.OrderStatus) error {
	switch role {
	case entity.RoleMechanic:
		if requesterEmployeeID == nil || assignedMechanicID == nil ||
			*requesterEmployeeID != *assignedMechanicID {
			return entity.Forbidden("cannot change the status of an order not assigned to you")
		}
		if requested == entity.StatusCancelled {
			return entity.Forbidden("mechanics are not allowed to cancel orders")
		}
		return nil
	case entity.RoleManager, entity.RoleSupervisor:
		return nil
	default:
		return entity.Forbidden("role not allowed to change order status")
	}
}
