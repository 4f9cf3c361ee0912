package query

import (
	"github.com/jdziat/buildkit"
)

// Builder assembles a Query step by step.
type Builder struct {
	core buildkit.Builder[Query]
}

// New creates a Builder for a SELECT over table.
// A blank table name is rejected with an invalid argument error and no
// Builder is returned.
func New(table string, opts ...buildkit.Option) (*Builder, error) {
	if err := buildkit.ValidateNotBlank("table", table); err != nil {
		return nil, err
	}
	opts = append([]buildkit.Option{buildkit.WithName("query")}, opts...)
	return &Builder{
		core: buildkit.NewBuilder(&Query{table: table}, opts...),
	}, nil
}

// Must is like New but panics on error. Use only with constant table names.
func Must(table string, opts ...buildkit.Option) *Builder {
	b, err := New(table, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Select replaces the selected fields. Calling it with no fields selects
// all of them.
func (b *Builder) Select(fields ...string) *Builder {
	selected := buildkit.CloneStrings(fields)
	b.core.Step("select", buildkit.ValidateEach("fields", selected), func(q *Query) {
		q.fields = selected
	})
	return b
}

// Where appends a condition. Conditions are joined with AND.
func (b *Builder) Where(condition string) *Builder {
	b.core.Step("where", buildkit.ValidateNotBlank("condition", condition), func(q *Query) {
		q.conditions = append(q.conditions, condition)
	})
	return b
}

// OrderBy appends an ORDER BY term. An empty direction means Asc.
func (b *Builder) OrderBy(field string, dir Direction) *Builder {
	dir = dir.normalize()
	check := buildkit.ValidateNotBlank("order field", field)
	if check == nil {
		check = buildkit.ValidateOneOf("order direction", string(dir), string(Asc), string(Desc))
	}
	b.core.Step("order by", check, func(q *Query) {
		q.orders = append(q.orders, Order{Field: field, Direction: dir})
	})
	return b
}

// OrderByAsc appends an ascending ORDER BY term.
func (b *Builder) OrderByAsc(field string) *Builder {
	return b.OrderBy(field, Asc)
}

// OrderByDesc appends a descending ORDER BY term.
func (b *Builder) OrderByDesc(field string) *Builder {
	return b.OrderBy(field, Desc)
}

// Limit sets the row limit; the last call wins. n must be positive.
func (b *Builder) Limit(n int) *Builder {
	b.core.Step("limit", buildkit.ValidatePositive("limit", n), func(q *Query) {
		q.limit = buildkit.Some(n)
	})
	return b
}

// Err returns the first rejected step, or nil.
func (b *Builder) Err() error {
	return b.core.Err()
}

// State returns the builder's lifecycle state.
func (b *Builder) State() buildkit.State {
	return b.core.State()
}

// Execute renders the SQL statement. It returns the first rejected step's
// error, if any.
func (b *Builder) Execute() (string, error) {
	return buildkit.Finalize(&b.core, func(q *Query) string {
		return q.SQL()
	}).Unwrap()
}

// Query returns a snapshot of the assembled query. Later steps on b do not
// affect the returned value.
func (b *Builder) Query() (Query, error) {
	return buildkit.Finalize(&b.core, (*Query).snapshot).Unwrap()
}
