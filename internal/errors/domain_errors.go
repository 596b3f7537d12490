package errors

import (
	"fmt"
)

// Inventory

func SnapshotFailed(message string, cause error) *AppError {
	return New(ErrTypeSnapshot, message, cause).WithStack()
}

func SelfProcessNotFound(pid int32) *AppError {
	return New(ErrTypeSnapshot, fmt.Sprintf("current process %d not in snapshot", pid), nil).WithStack()
}

func SelfOwnerUnknown(pid int32) *AppError {
	return New(ErrTypeSnapshot, fmt.Sprintf("owner of current process %d unreadable", pid), nil).WithStack()
}

// Suspend / resume

// HandleAcquisitionFailed covers exited, inaccessible and invalid targets.
func HandleAcquisitionFailed(pid int32, cause error) *AppError {
	return New(ErrTypeHandle, fmt.Sprintf("failed to open process %d", pid), cause).WithStack()
}

func PrimitiveFailed(op string, pid int32, cause error) *AppError {
	return New(ErrTypePrimitive, fmt.Sprintf("failed to %s process %d", op, pid), cause).WithStack()
}

// Arguments and state

func InvalidPID(pid int64) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid pid: %d", pid), nil).WithStack()
}

func ProcessNotInInventory(pid int32) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("process %d not in inventory", pid), nil).WithStack()
}

func NotHooked() *AppError {
	return New(ErrTypeState, "no process selected", nil).WithStack()
}

func AlreadyHooked() *AppError {
	return New(ErrTypeState, "a process is already selected", nil).WithStack()
}

func TargetStillPaused(pid int32) *AppError {
	return New(ErrTypeState, fmt.Sprintf("process %d is still paused, resume it first", pid), nil).WithStack()
}

func ConfigInvalid(field string, cause error) *AppError {
	return Config(fmt.Sprintf("invalid config field: %s", field), cause)
}
