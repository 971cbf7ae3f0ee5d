package http_server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danthegoodman1/ddlgen/schema_inference"
	"github.com/danthegoodman1/ddlgen/utils"
)

type (
	InferReqBody struct {
		// Table is the record type identity, it names the created table
		Table string `validate:"required"`
		// Fields is the ordered field listing every row aligns to
		Fields []string `validate:"required,min=1"`
		// Line-delimited JSON (NDJSON), one array of values per line
		RowsString *string
		// Array of JSON arrays of values
		Rows []json.RawMessage
		// SourceKey reads an NDJSON batch object from the datastore instead
		// of the request body
		SourceKey *string
		// StoreDDL writes the rendered statement back to the datastore
		StoreDDL bool
	}

	InferStats struct {
		InferenceID string
		Table       string
		Columns     []string
		NumRows     int64
		DDL         string
		TimeMS      int64
		StoredAs    *string `json:",omitempty"`
	}
)

func (s *HTTPServer) InferHandler(c *CustomContext) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second*60)
	defer cancel()

	start := time.Now()

	var reqBody InferReqBody
	if err := ValidateRequest(c, &reqBody); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	defer c.Request().Body.Close()

	var records []schema_inference.Record
	var err error

	if reqBody.RowsString != nil {
		records, err = rowsFromNDJSON(strings.NewReader(*reqBody.RowsString), reqBody.Table, reqBody.Fields)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
	} else if reqBody.Rows != nil {
		for i, raw := range reqBody.Rows {
			record, err := rowToRecord(raw, reqBody.Table, reqBody.Fields)
			if err != nil {
				return c.String(http.StatusBadRequest, fmt.Sprintf("row %d: %s", i, err.Error()))
			}
			records = append(records, record)
		}
	} else if reqBody.SourceKey != nil {
		data, err := s.DataStore.ReadBatch(ctx, *reqBody.SourceKey)
		var pe utils.PermError
		if errors.As(err, &pe) {
			return c.String(http.StatusNotFound, pe.Error())
		}
		if err != nil {
			return c.InternalError(err, "error reading batch from datastore")
		}
		records, err = rowsFromNDJSON(bytes.NewReader(data), reqBody.Table, reqBody.Fields)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}
	}

	if len(records) == 0 {
		return c.String(http.StatusBadRequest, "no rows found")
	}

	ddl, err := schema_inference.Infer(records)
	if err != nil {
		// everything Infer reports is an input problem
		return c.String(http.StatusBadRequest, err.Error())
	}

	stats := InferStats{
		InferenceID: utils.GenRandomID("inf_"),
		Table:       reqBody.Table,
		Columns:     reqBody.Fields,
		NumRows:     int64(len(records)),
		DDL:         ddl,
	}

	if reqBody.StoreDDL {
		key := fmt.Sprintf("ddl/%s_%s.sql", reqBody.Table, utils.GenKSortedID(""))
		if err := s.DataStore.WriteDDL(ctx, key, strings.NewReader(ddl)); err != nil {
			return c.InternalError(err, "error storing DDL")
		}
		stats.StoredAs = utils.Ptr(key)
	}

	stats.TimeMS = time.Since(start).Milliseconds()

	return c.JSON(http.StatusOK, stats)
}

// rowsFromNDJSON scans line-delimited JSON arrays into records. Blank lines
// are skipped so trailing newlines in batch objects don't fail the parse.
func rowsFromNDJSON(r io.Reader, table string, fields []string) ([]schema_inference.Record, error) {
	var records []schema_inference.Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		record, err := rowToRecord([]byte(text), table, fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error in scanner.Scan: %w", err)
	}
	return records, nil
}

// rowToRecord decodes one JSON array of cells into a record aligned to fields
func rowToRecord(raw []byte, table string, fields []string) (schema_inference.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var cells []any
	if err := dec.Decode(&cells); err != nil {
		return nil, fmt.Errorf("error in Decode: %w", err)
	}
	if len(cells) != len(fields) {
		return nil, fmt.Errorf("row has %d values, expected %d", len(cells), len(fields))
	}
	values := make([]schema_inference.Value, len(cells))
	for i, cell := range cells {
		values[i] = schema_inference.FromJSON(cell)
	}
	return schema_inference.NamedTuple{
		Name:   table,
		Names:  fields,
		Values: values,
	}, nil
}
