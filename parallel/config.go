// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"runtime"
	"strings"
)

// Schedule selects how loop spans are laid out and assigned to workers.
type Schedule int

const (
	// Static assigns spans to workers up front.
	Static Schedule = iota
	// Dynamic hands out fixed-size spans on demand.
	Dynamic
	// Guided hands out spans of decreasing size on demand.
	Guided
)

// scheduleNames maps each Schedule to its flag spelling.
var scheduleNames = [...]string{
	Static:  "static",
	Dynamic: "dynamic",
	Guided:  "guided",
}

// String returns the lower-case schedule name, or "Schedule(N)" when unknown.
func (s Schedule) String() string {
	if s < 0 || int(s) >= len(scheduleNames) {
		return fmt.Sprintf("Schedule(%d)", int(s))
	}

	return scheduleNames[s]
}

// ParseSchedule converts "static", "dynamic" or "guided" (case-insensitive)
// into a Schedule.
func ParseSchedule(name string) (Schedule, error) {
	for s, n := range scheduleNames {
		if strings.EqualFold(name, n) {
			return Schedule(s), nil
		}
	}

	return Static, fmt.Errorf("%w: unknown schedule %q", ErrInvalidConfig, name)
}

// Config carries the scheduling parameters of a Pool.
//
//	Workers:      goroutines in the pool; 0 means runtime.GOMAXPROCS(0).
//	Chunk:        span size; 0 means the schedule default (block for Static, 1 otherwise).
//	Schedule:     span layout and assignment policy.
type Config struct {
	Workers  int
	Chunk    int
	Schedule Schedule
}

// DefaultConfig returns GOMAXPROCS workers with a static block schedule.
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0), Chunk: 0, Schedule: Static}
}

// Validate reports ErrInvalidConfig for negative Workers or Chunk and for an
// unknown Schedule.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: Workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if c.Chunk < 0 {
		return fmt.Errorf("%w: Chunk cannot be negative (%d)", ErrInvalidConfig, c.Chunk)
	}
	if c.Schedule < Static || c.Schedule > Guided {
		return fmt.Errorf("%w: unknown schedule %d", ErrInvalidConfig, int(c.Schedule))
	}

	return nil
}

// normalized fills zero Workers with GOMAXPROCS.
func (c Config) normalized() Config {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	return c
}
