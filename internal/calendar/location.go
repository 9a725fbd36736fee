package calendar

import (
	"fmt"
	"time"
)

// LoadLocation resolves a configured zone name; "" and "Local" mean the
// host zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}
