// SPDX-License-Identifier: MIT

package kernels

import (
	"errors"
	"fmt"
)

// ErrInvalidSteps is returned when a loop length is not positive.
var ErrInvalidSteps = errors.New("kernels: number of steps must be > 0")

// ErrInvalidInterval is returned for a non-finite or empty integration interval.
var ErrInvalidInterval = errors.New("kernels: invalid interval")

const (
	opSinSum   = "SinSum"
	opMidpoint = "Midpoint"
	opDGEMV    = "DGEMV"
)

func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
