package common

import "fmt"

// ContractViolation is the panic value raised when a caller breaks a precondition of a
// generator or of the immediate renderer. It marks a programmer error: code never recovers
// from it to continue, and it is never returned as an error value.
type ContractViolation struct {
	// Op names the operation whose precondition failed (e.g. "mesh.GenerateCylinder").
	Op string
	// Msg describes the failed condition.
	Msg string
}

func (c *ContractViolation) Error() string {
	return "contract violation in " + c.Op + ": " + c.Msg
}

// Require panics with a *ContractViolation when cond is false.
//
// Parameters:
//   - cond: the precondition that must hold
//   - op: the operation name reported in the violation
//   - format: fmt-style description of the condition
//   - args: arguments for format
func Require(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	panic(&ContractViolation{Op: op, Msg: fmt.Sprintf(format, args...)})
}
