package window

import (
	"fmt"
	"strconv"
)

// ID identifies a top-level window. IDs are minted by the window host only;
// the zero value never names a live window.
type ID uint64

// String renders the identifier for logs and labels.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether the identifier could name a window.
func (id ID) Valid() bool {
	return id != 0
}

// Size is a window surface size in host units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Options are the creation parameters handed to the window host.
type Options struct {
	Icon        string `yaml:"icon,omitempty"`
	Transparent bool   `yaml:"transparent,omitempty"`
	Size        *Size  `yaml:"size,omitempty"`
}

// WithSize returns a copy of o using the given size.
func (o Options) WithSize(width, height float64) Options {
	o.Size = &Size{Width: width, Height: height}
	return o
}

// Payload flattens the options for trace logging.
func (o Options) Payload() map[string]interface{} {
	payload := map[string]interface{}{
		"transparent": o.Transparent,
	}
	if o.Icon != "" {
		payload["icon"] = o.Icon
	}
	if o.Size != nil {
		payload["size"] = o.Size.String()
	}
	return payload
}
