package common

import (
	"errors"
	"strings"
	"testing"
)

func TestRequire(t *testing.T) {
	Require(true, "op", "never formatted %d", 1)

	defer func() {
		r := recover()
		cv, ok := r.(*ContractViolation)
		if !ok {
			t.Fatalf("panic value %T, want *ContractViolation", r)
		}
		if cv.Op != "mesh.Test" || cv.Msg != "got 3, need 4" {
			t.Errorf("violation = %+v", cv)
		}
		var err error = cv
		if !strings.Contains(err.Error(), "mesh.Test") {
			t.Errorf("Error() = %q, want it to name the operation", err.Error())
		}
		var target *ContractViolation
		if !errors.As(err, &target) {
			t.Error("errors.As does not recognize the violation")
		}
	}()
	Require(false, "mesh.Test", "got %d, need %d", 3, 4)
	t.Fatal("Require(false) returned")
}
