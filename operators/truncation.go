package operators

// truncation is the signal a bounding operator returns to its upstream to stop
// the collection it is running. Every collection allocates its own signal and
// only intercepts that exact value, so nested bounding operators never
// swallow each other's signals and nothing outside the operator ever sees it.
type truncation struct {
	operator string
}

func (t *truncation) Error() string {
	return t.operator + ": flow truncated"
}

func newTruncation(operator string) *truncation {
	return &truncation{operator: operator}
}
