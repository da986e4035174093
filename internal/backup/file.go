// Package backup writes playtime tracker exports to files or S3 and runs
// periodic exports on a cron schedule.
package backup

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/factionwatch/internal/filex"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/validation"
)

func Encode(b models.Backup) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding backup: %w", err)
	}
	return data, nil
}

// Decode parses and validates a backup document.
func Decode(data []byte) (models.Backup, error) {
	var b models.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return models.Backup{}, fmt.Errorf("error decoding backup: %w", err)
	}
	if err := validation.Struct(b); err != nil {
		return models.Backup{}, err
	}
	return b, nil
}

func WriteFile(path string, b models.Backup) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(path, data)
}

func ReadFile(path string) (models.Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Backup{}, fmt.Errorf("error reading backup: %w", err)
	}
	return Decode(data)
}
