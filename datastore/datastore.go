package datastore

import (
	"context"
	"fmt"
	"io"

	"github.com/danthegoodman1/ddlgen/gologger"
	"github.com/danthegoodman1/ddlgen/utils"
)

var (
	logger = gologger.NewLogger()
)

type (
	// DataStore holds record batches awaiting inference and keeps rendered
	// DDL when a caller asks for it to be stored.
	DataStore interface {
		// ReadBatch reads an entire batch object (NDJSON, one row per line)
		ReadBatch(ctx context.Context, key string) ([]byte, error)
		// WriteDDL stores a rendered CREATE TABLE statement under key
		WriteDDL(ctx context.Context, key string, body io.Reader) error

		Shutdown(ctx context.Context) error
	}
)

// NewFromEnv builds the datastore selected by the DATASTORE env var
func NewFromEnv() (DataStore, error) {
	switch utils.DATASTORE {
	case "disk":
		return NewDiskDataStore(utils.DATA_DIR)
	case "s3":
		return NewS3DataStore()
	}
	return nil, fmt.Errorf("unknown DATASTORE '%s'", utils.DATASTORE)
}
