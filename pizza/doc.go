// Package pizza builds pizza orders.
//
// Size and crust are required at construction. Ingredients and extras
// accumulate in call order; the sauce and label are overwritten by later
// calls.
//
//	b, err := pizza.New("Medium", "Whole wheat")
//	if err != nil {
//	    return err
//	}
//	ticket, err := b.Sauce("tomato").
//	    Ingredient("pepperoni").
//	    Extra("mushroom").
//	    Extra("chimichurri").
//	    Execute()
package pizza
