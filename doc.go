// Package buildkit provides the shared core of a small family of fluent
// builders: a generic chaining base, explicit optional values, validation
// errors and rendering helpers.
//
// The domain builders live in subpackages:
//
//   - computer: computer configurations with optional CPU, RAM, storage and GPU
//   - query: SQL SELECT statements built from a table name
//   - pizza: pizza orders with a required size and crust
//   - recipe: a director that drives the builders from YAML recipes
//
// # Quick Start
//
//	b, err := query.New("users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sql, err := b.Select("id", "name", "email").
//	    Where("age > 18").
//	    Where("country = 'CR'").
//	    OrderBy("name", query.Asc).
//	    Limit(10).
//	    Execute()
//	// SELECT id, name, email FROM users WHERE age > 18 AND country = 'CR' ORDER BY name ASC LIMIT 10;
//
// # Configuration Steps
//
// Scalar steps overwrite: the last call wins. Sequence steps append in call
// order and keep duplicates. No step is mandatory; required fields are
// taken by the constructor.
//
// # Error Handling
//
// The only failure is an invalid argument, reported as a *ValidationError
// that matches ErrInvalidArgument:
//
//	b, err := pizza.New("", "thin")
//	if errors.Is(err, buildkit.ErrInvalidArgument) {
//	    // no builder was created
//	}
//
// A rejected step leaves the product unchanged and is visible immediately
// through Err(). Every later step on the same builder is skipped and the
// terminal call returns the same error.
//
// # Thread Safety
//
// Builders hold no locks. Confine each builder to one goroutine from
// construction to its terminal call.
package buildkit
