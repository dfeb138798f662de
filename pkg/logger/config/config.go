package config

import (
	"errors"
	"fmt"
)

const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
	FATAL_LEVEL = 5
)

var ErrInvalidConfiguration = errors.New("invalid logger configuration")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("%w: level %d out of range [%d, %d]", ErrInvalidConfiguration, c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: empty time format", ErrInvalidConfiguration)
	}
	return nil
}
