package rivercrossing

import (
	"fmt"
	"math"

	"github.com/smallnest/statespace/search"
)

// Bank is the side of the river the boat is on.
type Bank byte

const (
	// Left is the starting bank.
	Left Bank = 'I'
	// Right is the destination bank.
	Right Bank = 'D'
)

// DefaultCapacity is the classic boat size.
const DefaultCapacity = 2

// State is the boat position and the head counts on both banks.
type State struct {
	Boat              Bank
	LeftMissionaries  int
	LeftCannibals     int
	RightMissionaries int
	RightCannibals    int
}

func (s State) String() string {
	return fmt.Sprintf("(%c,%d,%d,%d,%d)", s.Boat, s.LeftMissionaries, s.LeftCannibals, s.RightMissionaries, s.RightCannibals)
}

// Move is one crossing: how many of each group ride the boat.
type Move struct {
	Missionaries int
	Cannibals    int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Missionaries, m.Cannibals)
}

// Problem is the missionaries-and-cannibals river crossing. A bank is
// unsafe when cannibals outnumber missionaries there while at least one
// missionary is present.
type Problem struct {
	initial  State
	goal     State
	capacity int
	moves    []Move
}

var _ search.InformedProblem[State, Move] = (*Problem)(nil)

// New returns a crossing from initial to goal with a boat that holds
// capacity people.
func New(initial, goal State, capacity int) *Problem {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Problem{
		initial:  initial,
		goal:     goal,
		capacity: capacity,
		moves:    movesFor(capacity),
	}
}

// Classic returns the puzzle with pairs of each group starting on the
// left bank and a two-seat boat.
func Classic(pairs int) *Problem {
	return New(
		State{Boat: Left, LeftMissionaries: pairs, LeftCannibals: pairs},
		State{Boat: Right, RightMissionaries: pairs, RightCannibals: pairs},
		DefaultCapacity,
	)
}

// movesFor lists the boat loads in trial order: cannibals only, then
// missionaries only, largest first, then mixed loads. For a two-seat boat
// that is 0,2 0,1 2,0 1,0 1,1.
func movesFor(capacity int) []Move {
	var moves []Move
	for c := capacity; c >= 1; c-- {
		moves = append(moves, Move{Cannibals: c})
	}
	for m := capacity; m >= 1; m-- {
		moves = append(moves, Move{Missionaries: m})
	}
	for m := 1; m < capacity; m++ {
		for c := 1; c <= m && m+c <= capacity; c++ {
			moves = append(moves, Move{Missionaries: m, Cannibals: c})
		}
	}
	return moves
}

// Initial implements search.Problem.
func (p *Problem) Initial() State { return p.initial }

// Goal returns the goal state.
func (p *Problem) Goal() State { return p.goal }

// Capacity returns the boat size.
func (p *Problem) Capacity() int { return p.capacity }

// IsGoal implements search.Problem.
func (p *Problem) IsGoal(s State) bool { return s == p.goal }

// Actions implements search.Problem: every load that fits on the boat's
// bank and leaves both banks safe.
func (p *Problem) Actions(s State) []Move {
	var actions []Move
	for _, m := range p.moves {
		fromM, fromC := s.LeftMissionaries, s.LeftCannibals
		if s.Boat == Right {
			fromM, fromC = s.RightMissionaries, s.RightCannibals
		}
		if m.Missionaries > fromM || m.Cannibals > fromC {
			continue
		}
		next := p.Result(s, m)
		if safe(next.LeftMissionaries, next.LeftCannibals) && safe(next.RightMissionaries, next.RightCannibals) {
			actions = append(actions, m)
		}
	}
	return actions
}

func safe(missionaries, cannibals int) bool {
	return missionaries == 0 || missionaries >= cannibals
}

// Result implements search.Problem: the load crosses and the boat
// changes bank.
func (p *Problem) Result(s State, m Move) State {
	next := s
	if s.Boat == Left {
		next.Boat = Right
		next.LeftMissionaries -= m.Missionaries
		next.LeftCannibals -= m.Cannibals
		next.RightMissionaries += m.Missionaries
		next.RightCannibals += m.Cannibals
	} else {
		next.Boat = Left
		next.LeftMissionaries += m.Missionaries
		next.LeftCannibals += m.Cannibals
		next.RightMissionaries -= m.Missionaries
		next.RightCannibals -= m.Cannibals
	}
	return next
}

// ActionCost implements search.Problem; every crossing costs 1.
func (p *Problem) ActionCost(State, Move, State) float64 { return 1 }

// H implements search.InformedProblem with a lower bound on the crossings
// left: each round trip nets at most capacity-1 people.
func (p *Problem) H(node *search.Node[State, Move]) float64 {
	return p.remainingCrossings(node.State)
}

func (p *Problem) remainingCrossings(s State) float64 {
	left := s.LeftMissionaries + s.LeftCannibals
	if s.Boat == Right {
		if left == 0 {
			return 0
		}
		// someone has to come back first
		return 1 + p.leftCrossings(left+1)
	}
	return p.leftCrossings(left)
}

func (p *Problem) leftCrossings(people int) float64 {
	if people <= 0 {
		return 0
	}
	if people <= p.capacity {
		return 1
	}
	if p.capacity == 1 {
		return math.Inf(1)
	}
	trips := math.Ceil(float64(people-p.capacity) / float64(p.capacity-1))
	return 2*trips + 1
}

func (p *Problem) String() string {
	return fmt.Sprintf("Problem(%v, %v)", p.initial, p.goal)
}
