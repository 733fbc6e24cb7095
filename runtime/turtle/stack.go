package turtle

import "github.com/aledsdavies/lindenmaker/core/errors"

// Stack saves turtle states around branches, last in first out
type Stack struct {
	states []State
}

// Push saves a copy of s
func (st *Stack) Push(s State) {
	st.states = append(st.states, s)
}

// Pop removes and returns the most recently pushed state
func (st *Stack) Pop() (State, error) {
	if len(st.states) == 0 {
		return State{}, errors.NewStackUnderflowError()
	}
	top := st.states[len(st.states)-1]
	st.states = st.states[:len(st.states)-1]
	return top, nil
}

// Len returns the number of saved states
func (st *Stack) Len() int { return len(st.states) }
