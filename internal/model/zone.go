package model

import (
	"fmt"
	"time"
)

// Zones pairs the zone ABE timestamps are written in with the zone they are spoken in.
type Zones struct {
	Source  *time.Location
	Display *time.Location
}

// LoadZones resolves both IANA zone names.
func LoadZones(source, display string) (Zones, error) {
	src, err := time.LoadLocation(source)
	if err != nil {
		return Zones{}, fmt.Errorf("invalid source timezone %q: %w", source, err)
	}
	dst, err := time.LoadLocation(display)
	if err != nil {
		return Zones{}, fmt.Errorf("invalid display timezone %q: %w", display, err)
	}
	return Zones{Source: src, Display: dst}, nil
}

func (z Zones) source() *time.Location {
	if z.Source == nil {
		return time.UTC
	}
	return z.Source
}

func (z Zones) display() *time.Location {
	if z.Display == nil {
		return time.UTC
	}
	return z.Display
}
