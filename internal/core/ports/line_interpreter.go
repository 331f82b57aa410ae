package ports

// LineInterpreter is the entry point of the interpreter core: one line in, a failure count out.
type LineInterpreter interface {
	// RunLine parses and executes line. It returns a *grammar.SyntaxError when the
	// line could not be parsed, in which case nothing was executed.
	RunLine(line string) (failures int, err error)
}
