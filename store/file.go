package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// FileBlob persists the collection as one JSON file. The write goes through
// a temp file and a rename so a crash mid-write never leaves a truncated
// blob behind.
type FileBlob struct {
	Path string
}

func NewFileBlob(path string) *FileBlob {
	return &FileBlob{Path: path}
}

func (b *FileBlob) Load(ctx context.Context) ([]models.Property, bool, error) {
	data, err := os.ReadFile(b.Path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", b.Path, err)
	}

	var records []models.Property
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", b.Path, err)
	}
	return records, true, nil
}

func (b *FileBlob) Save(ctx context.Context, records []models.Property) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding properties: %w", err)
	}

	tmp := b.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.Path); err != nil {
		return fmt.Errorf("replacing %s: %w", b.Path, err)
	}
	return nil
}
