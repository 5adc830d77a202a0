package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant/internal/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    model.OrderStatus
		to      model.OrderStatus
		wantErr bool
	}{
		{"pending to completed", model.OrderStatusPending, model.OrderStatusCompleted, false},
		{"pending to cancelled", model.OrderStatusPending, model.OrderStatusCancelled, false},
		{"pending to pending", model.OrderStatusPending, model.OrderStatusPending, true},
		{"completed to cancelled", model.OrderStatusCompleted, model.OrderStatusCancelled, true},
		{"cancelled to pending", model.OrderStatusCancelled, model.OrderStatusPending, true},
		{"unknown target", model.OrderStatusPending, model.OrderStatus("Shipped"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, IsTerminal(model.OrderStatusPending))
	assert.True(t, IsTerminal(model.OrderStatusCompleted))
	assert.True(t, IsTerminal(model.OrderStatusCancelled))

	err := CanTransition(model.OrderStatusCompleted, model.OrderStatusPending)
	assert.ErrorContains(t, err, "none (terminal state)")
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCancelled},
		ValidTransitionsFrom(model.OrderStatusPending))
	assert.True(t, IsKnown(model.OrderStatusCancelled))
	assert.False(t, IsKnown(model.OrderStatus("pending")))
}
