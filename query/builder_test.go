package query

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/jdziat/buildkit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuilder_EndToEnd(t *testing.T) {
	b, err := New("users")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := b.Select("id", "name", "email").
		Where("age > 18").
		Where("country = 'CR'").
		OrderBy("name", Asc).
		Limit(10).
		Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "SELECT id, name, email FROM users WHERE age > 18 AND country = 'CR' ORDER BY name ASC LIMIT 10;"
	if got != want {
		t.Errorf("Execute() =\n%s\nwant\n%s", got, want)
	}
}

func TestBuilder_Defaults(t *testing.T) {
	got, err := Must("users").Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "SELECT * FROM users;"; got != want {
		t.Errorf("Execute() = %q, want %q", got, want)
	}
}

func TestBuilder_SelectWildcard(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Builder)
		want   string
	}{
		{
			name:   "no select call",
			mutate: func(*Builder) {},
			want:   "SELECT * FROM t;",
		},
		{
			name:   "select without fields",
			mutate: func(b *Builder) { b.Select() },
			want:   "SELECT * FROM t;",
		},
		{
			name:   "select replaces earlier selection",
			mutate: func(b *Builder) { b.Select("a", "b").Select("c") },
			want:   "SELECT c FROM t;",
		},
		{
			name:   "empty select after fields resets to wildcard",
			mutate: func(b *Builder) { b.Select("a").Select() },
			want:   "SELECT * FROM t;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Must("t")
			tt.mutate(b)
			got, err := b.Execute()
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_LimitLastWriteWins(t *testing.T) {
	tests := []struct {
		first, second int
		want          string
	}{
		{5, 20, "SELECT * FROM t LIMIT 20;"},
		{20, 5, "SELECT * FROM t LIMIT 5;"},
	}
	for _, tt := range tests {
		got, err := Must("t").Limit(tt.first).Limit(tt.second).Execute()
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Limit(%d).Limit(%d) = %q, want %q", tt.first, tt.second, got, tt.want)
		}
	}
}

func TestBuilder_AppendOrder(t *testing.T) {
	got, err := Must("t").
		Where("a = 1").
		OrderByDesc("created_at").
		Where("b = 2").
		OrderBy("id", "").
		Where("a = 1").
		Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "SELECT * FROM t WHERE a = 1 AND b = 2 AND a = 1 ORDER BY created_at DESC, id ASC;"
	if got != want {
		t.Errorf("Execute() = %q, want %q", got, want)
	}
}

func TestBuilder_DirectionNormalization(t *testing.T) {
	got, err := Must("t").OrderBy("name", "desc").OrderByAsc("id").Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "SELECT * FROM t ORDER BY name DESC, id ASC;"; got != want {
		t.Errorf("Execute() = %q, want %q", got, want)
	}
}

func TestNew_RejectsBlankTable(t *testing.T) {
	for _, table := range []string{"", "   "} {
		b, err := New(table)
		if b != nil {
			t.Errorf("New(%q) returned a builder", table)
		}
		if !errors.Is(err, buildkit.ErrInvalidArgument) {
			t.Errorf("New(%q) error = %v, want ErrInvalidArgument", table, err)
		}
	}
}

func TestMust_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must(\"\") should panic")
		}
	}()
	Must("")
}

func TestBuilder_RejectedSteps(t *testing.T) {
	tests := []struct {
		name  string
		step  func(*Builder)
		field string
	}{
		{"blank condition", func(b *Builder) { b.Where(" ") }, "condition"},
		{"blank selected field", func(b *Builder) { b.Select("id", "") }, "fields[1]"},
		{"blank order field", func(b *Builder) { b.OrderBy("", Asc) }, "order field"},
		{"unknown direction", func(b *Builder) { b.OrderBy("id", "SIDEWAYS") }, "order direction"},
		{"zero limit", func(b *Builder) { b.Limit(0) }, "limit"},
		{"negative limit", func(b *Builder) { b.Limit(-1) }, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Must("t").Select("id").Where("x = 1")
			before, err := b.Query()
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}

			tt.step(b)

			vErr, ok := buildkit.AsValidationError(b.Err())
			if !ok {
				t.Fatalf("Err() = %v, want ValidationError", b.Err())
			}
			if vErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.field)
			}

			if _, err := b.Execute(); !errors.Is(err, buildkit.ErrInvalidArgument) {
				t.Errorf("Execute() error = %v, want ErrInvalidArgument", err)
			}
			if got := before.SQL(); got != "SELECT id FROM t WHERE x = 1;" {
				t.Errorf("snapshot changed: %q", got)
			}
		})
	}
}

func TestBuilder_ChainHaltsAfterFailure(t *testing.T) {
	b := Must("t").Limit(-1).Where("a = 1").Limit(5)

	vErr, ok := buildkit.AsValidationError(b.Err())
	if !ok || vErr.Field != "limit" {
		t.Fatalf("Err() = %v, want the limit failure", b.Err())
	}
	if b.core.Product().conditions != nil {
		t.Error("steps after a failure must not mutate the query")
	}
	if _, ok := b.core.Product().limit.Get(); ok {
		t.Error("limit must stay unset")
	}
}

func TestBuilder_ExecuteIdempotent(t *testing.T) {
	b := Must("t").Select("id").Where("id > 0").Limit(3)

	first, err1 := b.Execute()
	second, err2 := b.Execute()
	if err1 != nil || err2 != nil {
		t.Fatalf("Execute() errors = %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("Execute() not idempotent: %q != %q", first, second)
	}
	if b.State() != buildkit.StateFinalized {
		t.Errorf("State() = %v, want finalized", b.State())
	}
}

func TestBuilder_ReconfigureAfterExecute(t *testing.T) {
	b := Must("t")
	first, _ := b.Execute()

	second, err := b.Where("a = 1").Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first != "SELECT * FROM t;" {
		t.Errorf("first = %q", first)
	}
	if second != "SELECT * FROM t WHERE a = 1;" {
		t.Errorf("second = %q", second)
	}
}

func TestBuilder_SelectCopiesArguments(t *testing.T) {
	fields := []string{"id", "name"}
	b := Must("t").Select(fields...)
	fields[0] = "password"

	got, _ := b.Execute()
	if got != "SELECT id, name FROM t;" {
		t.Errorf("Execute() = %q, caller's slice leaked into the query", got)
	}
}

func TestBuilder_LongConditionAccepted(t *testing.T) {
	ids := strings.TrimSuffix(strings.Repeat("1, ", 400), ", ")
	cond := "id IN (" + ids + ")"
	if len(cond) <= 1000 {
		t.Fatalf("condition too short: %d", len(cond))
	}

	sql, err := Must("t").Where(cond).Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "SELECT * FROM t WHERE " + cond + ";"; sql != want {
		t.Errorf("Execute() = %q", sql)
	}
}
