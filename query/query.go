package query

import (
	"strconv"
	"strings"

	"github.com/jdziat/buildkit"
)

// Wildcard is the selection rendered when no fields were selected.
const Wildcard = "*"

// Direction is a sort direction for ORDER BY.
type Direction string

// Sort directions. The zero value is treated as Asc.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// normalize maps the zero value to Asc and upper-cases the rest.
func (d Direction) normalize() Direction {
	if d == "" {
		return Asc
	}
	return Direction(strings.ToUpper(string(d)))
}

// Order is one ORDER BY term.
type Order struct {
	Field     string
	Direction Direction
}

// String renders the term as "field DIR".
func (o Order) String() string {
	return o.Field + " " + string(o.Direction)
}

// Query is a SELECT statement under construction. The zero value is not
// usable; obtain one from a Builder.
type Query struct {
	table      string
	fields     []string
	conditions []string
	orders     []Order
	limit      buildkit.Optional[int]
}

// Table returns the table name.
func (q Query) Table() string { return q.table }

// Fields returns a copy of the selected fields. Empty means all fields.
func (q Query) Fields() []string { return buildkit.CloneStrings(q.fields) }

// Conditions returns a copy of the WHERE conditions in call order.
func (q Query) Conditions() []string { return buildkit.CloneStrings(q.conditions) }

// Orders returns a copy of the ORDER BY terms in call order.
func (q Query) Orders() []Order {
	if q.orders == nil {
		return nil
	}
	return append(make([]Order, 0, len(q.orders)), q.orders...)
}

// Limit returns the row limit and whether one was set.
func (q Query) Limit() (int, bool) { return q.limit.Get() }

// SQL renders the statement. Clauses appear in SELECT, FROM, WHERE,
// ORDER BY, LIMIT order; absent optional clauses are omitted and an empty
// selection renders as the wildcard.
func (q Query) SQL() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(buildkit.JoinOr(q.fields, ", ", Wildcard))
	sb.WriteString(" FROM ")
	sb.WriteString(q.table)

	if len(q.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conditions, " AND "))
	}

	if len(q.orders) > 0 {
		terms := make([]string, len(q.orders))
		for i, o := range q.orders {
			terms[i] = o.String()
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(terms, ", "))
	}

	if n, ok := q.limit.Get(); ok {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(n))
	}

	sb.WriteString(";")
	return sb.String()
}

// String implements fmt.Stringer.
func (q Query) String() string {
	return q.SQL()
}

// snapshot returns a copy of q sharing no slices with it.
func (q *Query) snapshot() Query {
	return Query{
		table:      q.table,
		fields:     buildkit.CloneStrings(q.fields),
		conditions: buildkit.CloneStrings(q.conditions),
		orders:     q.Orders(),
		limit:      q.limit,
	}
}
