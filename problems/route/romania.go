package route

// Romania returns the road map of Romania used throughout the AI
// textbook literature. Every road is at least as long as the straight
// line between its ends, so H is admissible and consistent on it.
func Romania() *Map {
	m, err := NewMap(romaniaCities(), romaniaRoads)
	if err != nil {
		panic(err)
	}
	return m
}

func romaniaCities() map[string]*Point {
	return map[string]*Point{
		"Arad":      {X: 91, Y: 492},
		"Bucharest": {X: 400, Y: 327},
		"Craiova":   {X: 253, Y: 288},
		"Drobeta":   {X: 165, Y: 299},
		"Eforie":    {X: 562, Y: 293},
		"Fagaras":   {X: 305, Y: 449},
		"Giurgiu":   {X: 375, Y: 270},
		"Hirsova":   {X: 534, Y: 350},
		"Iasi":      {X: 473, Y: 506},
		"Lugoj":     {X: 165, Y: 379},
		"Mehadia":   {X: 168, Y: 339},
		"Neamt":     {X: 406, Y: 537},
		"Oradea":    {X: 131, Y: 571},
		"Pitesti":   {X: 320, Y: 368},
		"Rimnicu":   {X: 233, Y: 410},
		"Sibiu":     {X: 207, Y: 457},
		"Timisoara": {X: 94, Y: 410},
		"Urziceni":  {X: 456, Y: 350},
		"Vaslui":    {X: 509, Y: 444},
		"Zerind":    {X: 108, Y: 531},
	}
}

var romaniaRoads = []Road{
	{From: "Arad", To: "Zerind", Distance: 75},
	{From: "Arad", To: "Sibiu", Distance: 140},
	{From: "Arad", To: "Timisoara", Distance: 118},
	{From: "Bucharest", To: "Urziceni", Distance: 85},
	{From: "Bucharest", To: "Pitesti", Distance: 101},
	{From: "Bucharest", To: "Giurgiu", Distance: 90},
	{From: "Bucharest", To: "Fagaras", Distance: 211},
	{From: "Craiova", To: "Drobeta", Distance: 120},
	{From: "Craiova", To: "Rimnicu", Distance: 146},
	{From: "Craiova", To: "Pitesti", Distance: 138},
	{From: "Drobeta", To: "Mehadia", Distance: 75},
	{From: "Eforie", To: "Hirsova", Distance: 86},
	{From: "Fagaras", To: "Sibiu", Distance: 99},
	{From: "Hirsova", To: "Urziceni", Distance: 98},
	{From: "Iasi", To: "Vaslui", Distance: 92},
	{From: "Iasi", To: "Neamt", Distance: 87},
	{From: "Lugoj", To: "Timisoara", Distance: 111},
	{From: "Lugoj", To: "Mehadia", Distance: 70},
	{From: "Oradea", To: "Zerind", Distance: 71},
	{From: "Oradea", To: "Sibiu", Distance: 151},
	{From: "Pitesti", To: "Rimnicu", Distance: 97},
	{From: "Rimnicu", To: "Sibiu", Distance: 80},
	{From: "Urziceni", To: "Vaslui", Distance: 142},
}
