// Package query builds SQL SELECT statements.
//
// A Builder is created from a table name and configured with Select, Where,
// OrderBy and Limit in any order:
//
//	b, err := query.New("users")
//	if err != nil {
//	    return err
//	}
//	sql, err := b.Select("id", "name", "email").
//	    Where("age > 18").
//	    Where("country = 'CR'").
//	    OrderBy("name", query.Asc).
//	    Limit(10).
//	    Execute()
//
// Select replaces the selection and renders "*" when called with no fields
// or not called at all. Where and OrderBy accumulate in call order. Limit
// overwrites.
//
// Conditions and field names are emitted verbatim: the package does not
// parse, quote or validate SQL.
package query
