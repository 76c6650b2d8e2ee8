package internal

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the edit engine's pick radii and the vertex floor.
type Config struct {
	// Pointer within this many pixels of a vertex grabs or deletes it
	GrabRadius float64 `json:"grab_radius"`
	// Pointer within this many pixels of an edge midpoint inserts there
	InsertRadius float64 `json:"insert_radius"`
	// Deletion is refused once the polygon is down to this many vertices
	MinVertices int `json:"min_vertices"`
}

func DefaultConfig() Config {
	return Config{
		GrabRadius:   24,
		InsertRadius: 25,
		MinVertices:  2,
	}
}

func (c Config) Validate() error {
	if c.GrabRadius <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "grab radius %g", c.GrabRadius)
	}
	if c.InsertRadius <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "insert radius %g", c.InsertRadius)
	}
	if c.MinVertices < 2 {
		return errors.Wrapf(ErrInvalidConfig, "vertex floor %d", c.MinVertices)
	}
	return nil
}

// LoadConfig reads a JSON config file. Fields missing from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}
