package data

// Row is one unit flowing out of the pipeline: either a single Record
// or a complete Aggregate snapshot.
type Row interface {
	isRow()
}

// Record is one structured event: the original line plus any parsed
// named fields. Fields may be empty for raw-only records.
type Record struct {
	Raw    string
	Fields map[string]Value
}

// Aggregate is a complete tabular result that is replaced wholesale on
// each update. Columns carries display order; every row maps column
// names to values.
type Aggregate struct {
	Columns []string
	Rows    []map[string]Value
}

func (*Record) isRow()    {}
func (*Aggregate) isRow() {}

// NewRecord creates a raw-only record.
func NewRecord(raw string) *Record {
	return &Record{Raw: raw, Fields: map[string]Value{}}
}

// NewAggregate builds an aggregate from grouping key columns plus one
// aggregated column. Each entry pairs a key-column map with the
// aggregated value, stored under aggColumn.
func NewAggregate(keyColumns []string, aggColumn string, rows []AggregateRow) *Aggregate {
	columns := make([]string, 0, len(keyColumns)+1)
	columns = append(columns, keyColumns...)
	columns = append(columns, aggColumn)

	data := make([]map[string]Value, 0, len(rows))
	for _, r := range rows {
		row := make(map[string]Value, len(r.Keys)+1)
		for k, v := range r.Keys {
			row[k] = Str(v)
		}
		row[aggColumn] = r.Value
		data = append(data, row)
	}
	return &Aggregate{Columns: columns, Rows: data}
}

// AggregateRow is one grouped result: its key-column values and the
// aggregated value.
type AggregateRow struct {
	Keys  map[string]string
	Value Value
}

// DisplayFields returns the record's fields in their raw string form,
// as consumed by format templates.
func (r *Record) DisplayFields() map[string]string {
	out := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		out[k] = v.String()
	}
	return out
}
