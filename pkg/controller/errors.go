package controller

import "errors"

var (
	// ErrConfirmationRequired is returned by destructive operations
	// called without an explicit confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrClosed is returned once a controller has been closed.
	ErrClosed = errors.New("controller is closed")

	// ErrSensorNotSelectable is returned when an approval names a
	// sensor that is not in the loaded available set.
	ErrSensorNotSelectable = errors.New("sensor is not in the available set")

	// ErrUnknownRequest is returned when an operation targets a
	// request id the controller has not loaded.
	ErrUnknownRequest = errors.New("request not loaded")

	// ErrUnknownSubscription is returned when an operation targets a
	// subscription id the controller has not loaded.
	ErrUnknownSubscription = errors.New("subscription not loaded")
)
