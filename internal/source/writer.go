package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/splitlog/internal/model"
)

// Write encodes expenses as an indented JSON array.
func Write(w io.Writer, expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(expenses)
}

// WriteFile writes expenses to path through a temp file and rename, so a
// failed export never leaves a truncated file behind.
func WriteFile(path string, expenses []model.Expense) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".splitlog-export-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Write(tmp, expenses); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming export: %w", err)
	}
	return nil
}
