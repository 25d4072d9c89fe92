package fixbv

// Cmp compares the real values of n and x, returning -1, 0 or +1. Numbers on
// different grids compare equal when they represent the same real value.
func (n *Number) Cmp(x any) (int, error) {
	a, b, err := n.align(x)
	if err != nil {
		return 0, err
	}

	return a.Value.Cmp(b.Value), nil
}

// Equal reports whether n == x.
func (n *Number) Equal(x any) (bool, error) {
	c, err := n.Cmp(x)

	return err == nil && c == 0, err
}

// Less reports whether n < x.
func (n *Number) Less(x any) (bool, error) {
	c, err := n.Cmp(x)

	return err == nil && c < 0, err
}

// LessEqual reports whether n <= x.
func (n *Number) LessEqual(x any) (bool, error) {
	c, err := n.Cmp(x)

	return err == nil && c <= 0, err
}

// Greater reports whether n > x, as the negation of LessEqual.
func (n *Number) Greater(x any) (bool, error) {
	le, err := n.LessEqual(x)
	if err != nil {
		return false, err
	}

	return !le, nil
}

// GreaterEqual reports whether n >= x, as the negation of Less.
func (n *Number) GreaterEqual(x any) (bool, error) {
	lt, err := n.Less(x)
	if err != nil {
		return false, err
	}

	return !lt, nil
}
