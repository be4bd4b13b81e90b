package object

import "io"

// Context is an abstract sink exposing the single output stream that
// print statements write to, plus the instance registry new-instance
// expressions allocate through. Its lifetime covers one program
// execution; the driver owns the underlying writer.
type Context struct {
	Out       io.Writer
	Instances *Registry
}

// NewContext wraps w as a Context with a fresh instance registry.
func NewContext(w io.Writer) *Context {
	return &Context{Out: w, Instances: NewRegistry()}
}
