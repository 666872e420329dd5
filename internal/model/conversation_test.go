package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParticipantKey(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	c := uuid.MustParse("00000000-0000-0000-0000-00000000000c")

	t.Run("order independent", func(t *testing.T) {
		assert.Equal(t,
			ParticipantKey([]uuid.UUID{a, b, c}),
			ParticipantKey([]uuid.UUID{c, a, b}),
		)
	})

	t.Run("distinct sets produce distinct keys", func(t *testing.T) {
		assert.NotEqual(t,
			ParticipantKey([]uuid.UUID{a, b}),
			ParticipantKey([]uuid.UUID{a, b, c}),
		)
	})

	t.Run("single member", func(t *testing.T) {
		assert.Equal(t, a.String(), ParticipantKey([]uuid.UUID{a}))
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := []uuid.UUID{c, a, b}
		ParticipantKey(in)
		assert.Equal(t, []uuid.UUID{c, a, b}, in)
	})
}
