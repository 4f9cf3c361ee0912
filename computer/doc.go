// Package computer builds computer configurations.
//
//	c, err := computer.New().
//	    CPU("Intel Core i7").
//	    RAM("32GB").
//	    Storage("1TB").
//	    GPU("RTX 5090").
//	    Build()
//
// Every part is optional and overwritten by later calls. Build returns a
// Computer value rather than text; Configuration renders it.
package computer
