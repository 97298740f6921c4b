package domain

// State is the ordered transaction collection of a session, in insertion order.
type State []Transaction

// Command is a state transition request. The set of commands is closed.
type Command interface {
	apply(State) State
}

// CreateCommand appends Transaction to the end of the collection.
// The id must already be assigned.
type CreateCommand struct {
	Transaction Transaction
}

// UpdateCommand replaces every field but the id of the transaction with ID.
type UpdateCommand struct {
	ID      string
	Payload TransactionPayload
}

// DeleteCommand removes the transaction with ID.
type DeleteCommand struct {
	ID string
}

// Apply returns the state that results from applying cmd to state.
// state is never modified; unknown ids leave the result equal to the input.
func Apply(state State, cmd Command) State {
	if cmd == nil {
		return state.Clone()
	}
	return cmd.apply(state)
}

func (c CreateCommand) apply(s State) State {
	next := make(State, 0, len(s)+1)
	next = append(next, s...)
	return append(next, c.Transaction)
}

func (c UpdateCommand) apply(s State) State {
	next := s.Clone()
	for i := range next {
		if next[i].ID == c.ID {
			next[i].TransactionPayload = c.Payload
			break
		}
	}
	return next
}

func (c DeleteCommand) apply(s State) State {
	next := make(State, 0, len(s))
	for _, tx := range s {
		if tx.ID != c.ID {
			next = append(next, tx)
		}
	}
	return next
}

// Clone returns a copy of s that shares no backing array with it.
func (s State) Clone() State {
	next := make(State, len(s))
	copy(next, s)
	return next
}

// Find returns the transaction with id, if present.
func (s State) Find(id string) (Transaction, bool) {
	for _, tx := range s {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}
