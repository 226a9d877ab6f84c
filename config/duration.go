package config

import (
	"fmt"
	"strconv"
	"time"
)

// Duration is time.Duration decoded either from a string in time.ParseDuration
// format ("30s", "1m30s") or from an integer number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		str, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("config: duration: %w", err)
		}

		parsed, err := time.ParseDuration(str)
		if err != nil {
			return fmt.Errorf("config: duration: %w", err)
		}

		*d = Duration(parsed)
		return nil
	}

	nanos, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("config: duration: %w", err)
	}

	*d = Duration(nanos)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, time.Duration(d).String()), nil
}

// Std returns the duration as time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
