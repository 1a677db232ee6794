package todo

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/idilsaglam/tada/internal/model"
)

// IDGenerator hands out todo IDs. Two calls within one session must never
// return the same value.
type IDGenerator interface {
	Next() model.ID
}

// Sequence is a counter-backed generator. The zero value starts at 1.
type Sequence struct {
	n uint64
}

func (s *Sequence) Next() model.ID {
	s.n++
	return model.ID(strconv.FormatUint(s.n, 10))
}

// UUIDs generates random v4 identifiers.
type UUIDs struct{}

func (UUIDs) Next() model.ID { return model.ID(uuid.NewString()) }

// NewIDGenerator maps a configured scheme name to a generator.
// Unknown names fall back to a Sequence.
func NewIDGenerator(scheme string) IDGenerator {
	if scheme == SchemeUUID {
		return UUIDs{}
	}
	return &Sequence{}
}

// Supported id schemes.
const (
	SchemeSequence = "sequence"
	SchemeUUID     = "uuid"
)
