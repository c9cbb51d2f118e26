package models

// SupervisorStatus represents the overall availability state of a supervisor,
// set by the HR process rather than by the scheduling core.
type SupervisorStatus string

const (
	SupervisorStatusAvailable   SupervisorStatus = "available"
	SupervisorStatusUnavailable SupervisorStatus = "unavailable"
	SupervisorStatusOnLeave     SupervisorStatus = "on_leave"
)

// AssignmentRole represents the role of a supervisor within an exam session
type AssignmentRole string

const (
	AssignmentRolePrimary   AssignmentRole = "primary"
	AssignmentRoleSecondary AssignmentRole = "secondary"
	AssignmentRoleAssistant AssignmentRole = "assistant"
)

// AssignmentStatus represents the lifecycle state of an assignment
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusDeclined  AssignmentStatus = "declined"
	AssignmentStatusReplaced  AssignmentStatus = "replaced"
)

// ActiveAssignmentStatuses are the statuses that count as a live commitment
// for conflict detection and load accounting.
var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentStatusAssigned,
	AssignmentStatusConfirmed,
}

// slotRoles maps slot position to role. Slots past the end of the table
// saturate to the last role instead of inventing new ones.
var slotRoles = []AssignmentRole{
	AssignmentRolePrimary,
	AssignmentRoleSecondary,
	AssignmentRoleAssistant,
}

// RoleForSlot returns the role for the given zero-based slot position.
func RoleForSlot(slot int) AssignmentRole {
	if slot < 0 {
		slot = 0
	}
	if slot >= len(slotRoles) {
		return slotRoles[len(slotRoles)-1]
	}
	return slotRoles[slot]
}

// IsValid checks if the SupervisorStatus is valid
func (s SupervisorStatus) IsValid() bool {
	switch s {
	case SupervisorStatusAvailable, SupervisorStatusUnavailable, SupervisorStatusOnLeave:
		return true
	}
	return false
}

// IsValid checks if the AssignmentRole is valid
func (r AssignmentRole) IsValid() bool {
	switch r {
	case AssignmentRolePrimary, AssignmentRoleSecondary, AssignmentRoleAssistant:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusConfirmed, AssignmentStatusDeclined, AssignmentStatusReplaced:
		return true
	}
	return false
}

// IsActive reports whether the status counts as a live commitment.
func (s AssignmentStatus) IsActive() bool {
	return s == AssignmentStatusAssigned || s == AssignmentStatusConfirmed
}
