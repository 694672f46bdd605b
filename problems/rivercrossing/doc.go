// Package rivercrossing is the missionaries-and-cannibals puzzle as a
// search.Problem.
//
// Everyone starts on the left bank ('I') and must reach the right bank
// ('D') in a boat that holds at most Capacity people and never crosses
// empty. Cannibals may never outnumber missionaries on a bank that has
// missionaries on it. With a two-seat boat the puzzle is solvable for up
// to three pairs; the three-pair solution takes eleven crossings.
//
//	p := rivercrossing.Classic(3)
//	res, err := search.BreadthFirstSearch(ctx, p)
package rivercrossing
