package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_TransitionTable(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered},
	}

	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, OrderStatus("shipped").IsTerminal())
	assert.Empty(t, StatusDelivered.AllowedTransitions())
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("out-for-delivery").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_AllowedTransitionsIsACopy(t *testing.T) {
	next := StatusPending.AllowedTransitions()
	next[0] = StatusDelivered

	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))
}

func TestRecipe_Orderable(t *testing.T) {
	r := &Recipe{BasePrice: decimal.RequireFromString("8.50"), IsAvailable: true}
	assert.True(t, r.Orderable())

	r.IsAvailable = false
	assert.False(t, r.Orderable())

	r = &Recipe{BasePrice: decimal.Zero, IsAvailable: true}
	assert.False(t, r.Orderable())
}

func TestDifficulty_Valid(t *testing.T) {
	assert.True(t, DifficultyEasy.Valid())
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("extreme").Valid())
}
