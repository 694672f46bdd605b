// Package route finds routes on a road map.
//
// A Map holds named cities, each with an optional location, and
// undirected roads with a length. A Problem asks for the shortest drive
// from Start to Goal; its heuristic is the straight-line distance to Goal,
// which is admissible whenever no road is shorter than the straight line
// between its ends.
//
// Maps come from NewMap, from YAML through LoadMap and LoadMapFile, or
// from the built-in Romania map.
package route
