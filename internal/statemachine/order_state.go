package statemachine

import (
	"fmt"
	"strings"

	"restaurant/internal/model"
)

// Transition defines a valid order status change.
type Transition struct {
	From model.OrderStatus
	To   model.OrderStatus
}

// validTransitions is the authoritative order lifecycle. Completed and Cancelled are terminal.
var validTransitions = []Transition{
	{From: model.OrderStatusPending, To: model.OrderStatusCompleted},
	{From: model.OrderStatusPending, To: model.OrderStatusCancelled},
}

var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// IsKnown reports whether status is one of the defined order statuses.
func IsKnown(status model.OrderStatus) bool {
	switch status {
	case model.OrderStatusPending, model.OrderStatusCompleted, model.OrderStatusCancelled:
		return true
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status model.OrderStatus) []model.OrderStatus {
	var nexts []model.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status model.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if an order may move from one state to another.
func CanTransition(from, to model.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("invalid transition: %s -> %s, valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(status model.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
