package eval

// Stack is the evaluator's data stack: a LIFO sequence of numbers, stored
// bottom first, so that the top of the stack is its last element.
type Stack []float64

// Len returns the stack's depth.
func (st Stack) Len() int { return len(st) }

// Push adds values to the top of the stack, last value ending up on top.
func (st *Stack) Push(vals ...float64) { *st = append(*st, vals...) }

// Pop removes and returns the top value. The stack must not be empty; words
// check their depth with Need before popping anything.
func (st *Stack) Pop() (val float64) {
	i := len(*st) - 1
	val, *st = (*st)[i], (*st)[:i]
	return val
}

// Peek returns the top value without removing it; like Pop, the stack must
// not be empty.
func (st Stack) Peek() float64 { return st[len(st)-1] }

// Need returns an UnderflowError on behalf of the named word if the stack
// holds fewer than n values.
func (st Stack) Need(word string, n int) error {
	if len(st) < n {
		return UnderflowError{Word: word, Needed: n, Available: len(st)}
	}
	return nil
}
