// Package recipe describes products declaratively and renders them through
// the domain builders.
//
// A recipe file lists named recipes, each of one kind:
//
//	recipes:
//	  - name: adult-users
//	    kind: query
//	    query:
//	      table: users
//	      select: [id, name, email]
//	      where: ["age > 18", "country = 'CR'"]
//	      order_by:
//	        - field: name
//	          direction: ASC
//	      limit: 10
//	  - name: office
//	    kind: computer
//	    computer:
//	      preset: basic
//	  - name: veggie
//	    kind: pizza
//	    pizza:
//	      size: Medium
//	      crust: Thin
//	      ingredients: [pepper, onion]
//
// The Director replays a recipe as a sequence of builder steps, so a recipe
// is rejected for exactly the values a builder would reject.
package recipe
