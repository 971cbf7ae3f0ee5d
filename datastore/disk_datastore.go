package datastore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/danthegoodman1/ddlgen/utils"
)

type (
	DiskDataStore struct {
		rootPath string
	}
)

func NewDiskDataStore(rootPath string) (*DiskDataStore, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("error in os.MkdirAll: %w", err)
	}
	return &DiskDataStore{
		rootPath: rootPath,
	}, nil
}

func (dds *DiskDataStore) ReadBatch(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(dds.rootPath, key))
	if os.IsNotExist(err) {
		return nil, utils.PermError("batch object not found: " + key)
	}
	if err != nil {
		return nil, fmt.Errorf("error in os.ReadFile: %w", err)
	}
	return b, nil
}

func (dds *DiskDataStore) WriteDDL(_ context.Context, key string, body io.Reader) error {
	path := filepath.Join(dds.rootPath, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error in os.MkdirAll: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error in os.Create: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("error in io.Copy: %w", err)
	}
	return nil
}

func (dds *DiskDataStore) Shutdown(_ context.Context) error {
	return nil
}
