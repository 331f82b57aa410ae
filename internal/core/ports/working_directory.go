package ports

// WorkingDirectory gives access to the interpreter's current working directory.
type WorkingDirectory interface {
	Getwd() (string, error)
	Chdir(dir string) error
}
