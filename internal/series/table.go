package series

import (
	"time"
)

// Column is one named numeric column of a Table.
type Column struct {
	Name   string
	Values []float64
}

// Table is a set of numeric columns over a shared timestamp axis.
type Table struct {
	Dates   []time.Time
	Columns []Column
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Dates)
}

// ColumnNames lists the numeric columns in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := Table{
		Dates:   append([]time.Time(nil), t.Dates...),
		Columns: make([]Column, len(t.Columns)),
	}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name, Values: append([]float64(nil), c.Values...)}
	}
	return out
}

// Entry pairs a series name with its table.
type Entry struct {
	Name  string
	Table Table
}

// Collection is the ordered, named set of tables generated for one region.
type Collection struct {
	Region  Region
	Entries []Entry
}

// Len returns the number of series.
func (c Collection) Len() int {
	return len(c.Entries)
}

// Names returns the series names in display order.
func (c Collection) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds a series by name.
func (c Collection) Lookup(name string) (Table, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e.Table, true
		}
	}
	return Table{}, false
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := Collection{Region: c.Region, Entries: make([]Entry, len(c.Entries))}
	for i, e := range c.Entries {
		out.Entries[i] = Entry{Name: e.Name, Table: e.Table.Clone()}
	}
	return out
}
