package nbadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Response is the envelope every stats.nba.com endpoint returns.
type Response struct {
	Resource   string          `json:"resource"`
	Parameters json.RawMessage `json:"parameters"`
	ResultSets []ResultSet     `json:"resultSets"`
}

// ResultSet is one table of a Response.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// DecodeResponse parses a response body, keeping numbers exact.
func DecodeResponse(body []byte) (Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var r Response
	if err := dec.Decode(&r); err != nil {
		return Response{}, fmt.Errorf("DecodeResponse: failed to unmarshal response body: %w", err)
	}
	return r, nil
}

// Set returns the result set with the given name, or the first set if name is empty.
func (r Response) Set(name string) (ResultSet, error) {
	if len(r.ResultSets) == 0 {
		return ResultSet{}, fmt.Errorf("Set: %s response has no result sets", r.Resource)
	}
	if name == "" {
		return r.ResultSets[0], nil
	}
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return ResultSet{}, fmt.Errorf("Set: %s response has no result set named %q", r.Resource, name)
}

// Row is one row of a result set, addressed by column header.
type Row struct {
	columns map[string]int
	values  []any
}

// Rows returns the rows of a result set.
func (rs ResultSet) Rows() []Row {
	columns := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		columns[h] = i
	}
	rows := make([]Row, len(rs.RowSet))
	for i, v := range rs.RowSet {
		rows[i] = Row{columns: columns, values: v}
	}
	return rows
}

func (r Row) value(col string) (any, error) {
	i, ok := r.columns[col]
	if !ok {
		return nil, fmt.Errorf("no column %s", col)
	}
	if i >= len(r.values) {
		return nil, fmt.Errorf("row has %d values, column %s is at %d", len(r.values), col, i)
	}
	return r.values[i], nil
}

// String returns a column as a string. Numbers are rendered as they appeared in the JSON.
func (r Row) String(col string) (string, error) {
	v, err := r.value(col)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(x), nil
	}
}

// Float returns a numeric column as a float64.
func (r Row) Float(col string) (float64, error) {
	v, err := r.value(col)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case json.Number:
		return x.Float64()
	case float64:
		return x, nil
	case string:
		return strconv.ParseFloat(x, 64)
	default:
		return 0, fmt.Errorf("column %s is %T, not a number", col, v)
	}
}

// Int returns a numeric column as an int64.
func (r Row) Int(col string) (int64, error) {
	v, err := r.value(col)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	case float64:
		return int64(x), nil
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, fmt.Errorf("column %s is %T, not a number", col, v)
	}
}
