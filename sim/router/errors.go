package router

import "errors"

// ErrInsufficientGridSlots is returned when the grid has fewer than |V|
// distinct (x,y) slots to place every node (spec §4.3).
var ErrInsufficientGridSlots = errors.New("router: grid has fewer slots than graph vertices")
