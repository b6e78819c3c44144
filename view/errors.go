package view

import "strconv"

// indexError is the panic value raised for out-of-range element access.
type indexError struct {
	index  int
	length int
}

func (e indexError) Error() string {
	return "view: index " + strconv.Itoa(e.index) + " out of range [0:" + strconv.Itoa(e.length) + "]"
}
