package repl

// Banner is printed once when an interactive session starts.
const Banner = `Welcome to CRuSh (Completely Rubbish Shell)!
The shell that won't let you sleep again...

`
