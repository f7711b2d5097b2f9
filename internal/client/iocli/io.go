// Package iocli abstracts terminal input/output so console flows can be
// driven by scripted IO in tests.
package iocli

// IO is the terminal surface used by the console flows.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
