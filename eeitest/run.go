package eeitest

import "fmt"

// Status describes how an emulated execution ended.
type Status int

const (
	// StatusFinished means the program completed successfully, either by
	// calling finish or by returning from its entry point.
	StatusFinished Status = iota
	// StatusReverted means the program discarded its state changes.
	StatusReverted
	// StatusSelfDestructed means the program destroyed its own account.
	StatusSelfDestructed
	// StatusOutOfGas means the gas budget was exhausted.
	StatusOutOfGas
)

func (s Status) String() string {
	switch s {
	case StatusFinished:
		return "finished"
	case StatusReverted:
		return "reverted"
	case StatusSelfDestructed:
		return "selfdestructed"
	case StatusOutOfGas:
		return "out of gas"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Termination is the panic value the emulated host unwinds with when a
// terminating operation is invoked. It models the EEI contract that finish,
// revert and selfDestruct never return control to the program.
type Termination struct {
	Status     Status
	ReturnData []byte
}

// Outcome is the result of running a program against the emulated host.
type Outcome struct {
	Status     Status
	ReturnData []byte
	GasUsed    uint64
}

// Run executes program against the host and reports how it terminated. A
// program that returns without invoking a terminating operation counts as
// finished with no return data. Panics other than the host's own Termination
// are re-raised untouched, so contract violations still abort the test.
//
// The emulated world state is not journaled: writes made before a revert
// remain visible to later assertions. Tests that care about pre-revert state
// should assert inside the program.
func (h *Host) Run(program func()) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			term, ok := r.(Termination)
			if !ok {
				panic(r)
			}
			out = Outcome{Status: term.Status, ReturnData: term.ReturnData, GasUsed: h.gasUsed}
		}
	}()
	program()
	out = Outcome{Status: StatusFinished, GasUsed: h.gasUsed}
	return
}
