package eval

import "fmt"

// Loc is a source location in a makefile.
type Loc struct {
	Filename string
	Line     int
}

func (l Loc) String() string {
	return fmt.Sprintf("%s:%d", l.Filename, l.Line)
}
