// Package registry - registry/seed.go
package registry

import (
	"encoding/json"
	"os"

	"activities-portal/models"
)

// LoadSeed reads the initial activity roster from a JSON config file.
// The file is an object keyed by activity name; its key order becomes the
// registry's listing order.
func LoadSeed(path string) (models.ActivityCollection, error) {
	data, err := os.ReadFile(path) // #nosec
	if err != nil {
		return nil, err
	}

	var seed models.ActivityCollection
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return seed, nil
}
