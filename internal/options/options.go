// Package options contains the program options.
package options

// DefaultClockHz is the default CPU instruction rate. Historical
// interpreters ran at roughly 500-1000 instructions per second.
const DefaultClockHz = 700

// Program options of the reference host.
type Program struct {
	// Input is the ROM file to run.
	Input string

	// ClockHz is the CPU instruction rate in instructions per second.
	// The 60 Hz timer rate is fixed and independent of this value.
	ClockHz int

	// Cycles stops execution after this many instruction cycles.
	// Zero runs until a fault or cancellation.
	Cycles int

	// Seed selects a deterministic entropy source for the RND
	// instruction. Zero uses a system seeded source.
	Seed uint64

	// Trace logs every executed instruction at debug level.
	Trace bool

	// DumpScreen prints the final display buffer as text on exit.
	DumpScreen bool

	// Debug enables debug logging.
	Debug bool

	// Quiet reduces logging to errors only.
	Quiet bool
}

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		ClockHz: DefaultClockHz,
	}
}
