// SPDX-License-Identifier: MIT

package parallel

import "errors"

// ErrInvalidConfig is returned when a Config carries a negative worker count,
// a negative chunk or an unknown schedule.
var ErrInvalidConfig = errors.New("parallel: invalid config")
