package database

import "strings"

// Field is one (column, optional value) entry of a partial update. Set is
// false when the caller did not supply the field; a set field with a nil
// Value writes NULL.
type Field struct {
	Column string
	Value  interface{}
	Set    bool
}

// UpdateSet is an ordered list of candidate columns for a partial update.
type UpdateSet []Field

// Add appends a field and returns the extended set.
func (s UpdateSet) Add(column string, value interface{}, set bool) UpdateSet {
	return append(s, Field{Column: column, Value: value, Set: set})
}

// Fields returns the set entries in declaration order.
func (s UpdateSet) Fields() []Field {
	out := make([]Field, 0, len(s))
	for _, f := range s {
		if f.Set {
			out = append(out, f)
		}
	}
	return out
}

// Empty reports whether no entry is set.
func (s UpdateSet) Empty() bool {
	for _, f := range s {
		if f.Set {
			return false
		}
	}
	return true
}

// Build renders UPDATE table SET c1 = ?, c2 = ? WHERE id = ? over the set
// entries. Arguments are the values in order followed by id.
func (s UpdateSet) Build(d Dialect, table string, id int64) (string, []interface{}, error) {
	fields := s.Fields()
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	assignments := make([]string, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for i, f := range fields {
		assignments[i] = d.Quote(f.Column) + " = " + d.Placeholder(i+1)
		args = append(args, f.Value)
	}
	args = append(args, id)

	parts := []string{
		"UPDATE", d.Quote(table),
		"SET", strings.Join(assignments, ", "),
		"WHERE", d.Quote(ColID), "=", d.Placeholder(len(args)),
	}
	return strings.Join(parts, " "), args, nil
}
