package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/validation"
)

// loadSeed reads the initial factions and users from a JSON file.
func loadSeed(path string) (models.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Seed{}, fmt.Errorf("error reading seed: %w", err)
	}

	var seed models.Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return models.Seed{}, fmt.Errorf("error decoding seed: %w", err)
	}
	if err := validation.Struct(seed); err != nil {
		return models.Seed{}, fmt.Errorf("invalid seed: %w", err)
	}
	return seed, nil
}
