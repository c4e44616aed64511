// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for a non-positive size or worker count.
	ErrInvalidConfig = errors.New("harness: invalid config")

	// ErrVerification is returned when a result strays from the reference
	// solution by more than VerifyTolerance.
	ErrVerification = errors.New("harness: verification failed")
)

const (
	opRunIteration = "RunIteration"
	opRunDGEMV     = "RunDGEMV"
	opRunIntegrate = "RunIntegrate"
	opRunSinSum    = "RunSinSum"
)

func harnessErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
