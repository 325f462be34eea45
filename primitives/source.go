package primitives

// Cursor is an external, already positioned iteration source. Next returns
// the next value and true, or the zero value and false once the cursor is
// exhausted. Cursors cannot be rewound.
type Cursor[T any] interface {
	Next() (T, bool)
}

// Restartable is implemented by flows that know whether collecting them a
// second time replays the same values. Flows that close over a Cursor, a
// channel or any other external one-shot state return false, and every
// operator built on top of them returns false as well. A flow that does not
// implement this interface is considered restartable.
type Restartable interface {
	Restartable() bool
}
