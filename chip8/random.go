package chip8

import (
	"math/rand/v2"
)

// EntropySource supplies random bytes for the RND instruction.
// It is injected as a capability so hosts and tests can substitute a
// deterministic source; draw and collision scenarios involving RND
// are otherwise untestable.
type EntropySource interface {
	// ReadByte returns one uniformly distributed random byte.
	ReadByte() (byte, error)
}

// Compile-time checks to ensure the sources implement EntropySource.
var (
	_ EntropySource = systemEntropy{}
	_ EntropySource = (*seededEntropy)(nil)
)

// NewEntropy returns the default entropy source, seeded from the
// system at process start.
func NewEntropy() EntropySource {
	return systemEntropy{}
}

// NewSeededEntropy returns a deterministic entropy source producing
// the same byte sequence for the same seed.
func NewSeededEntropy(seed uint64) EntropySource {
	return &seededEntropy{
		rng: rand.New(rand.NewPCG(seed, 0)),
	}
}

// systemEntropy draws from the shared system seeded generator.
type systemEntropy struct{}

func (systemEntropy) ReadByte() (byte, error) {
	return byte(rand.UintN(256)), nil
}

// seededEntropy draws from a private deterministic generator.
type seededEntropy struct {
	rng *rand.Rand
}

func (s *seededEntropy) ReadByte() (byte, error) {
	return byte(s.rng.UintN(256)), nil
}
