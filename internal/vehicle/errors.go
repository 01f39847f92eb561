package vehicle

import "errors"

var ErrUnknownVehicle = errors.New("vehicle: unknown configuration")
