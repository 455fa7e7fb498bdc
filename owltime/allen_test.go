package owltime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/owltime"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

func TestBeginningOfInterval(t *testing.T) {
	r := newResolver()

	t.Run("direct", func(t *testing.T) {
		ont := build(t,
			link(ex+"war", vocab.HasBeginning, ex+"b"),
			stampInstant(ex+"b", "1939-09-01T04:45:00Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"war")
		require.NoError(t, err)
		assert.Equal(t, "1939-09-01T04:45:00", c.String())
	})

	t.Run("met by", func(t *testing.T) {
		ont := build(t,
			link(ex+"after", vocab.IntervalMetBy, ex+"before"),
			link(ex+"before", vocab.HasEnd, ex+"e"),
			stampInstant(ex+"e", "1939-09-01T08:01:01Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"after")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "1939-09-01T08:01:01", c.String())
	})

	t.Run("starts", func(t *testing.T) {
		ont := build(t,
			link(ex+"first-week", vocab.IntervalStarts, ex+"month"),
			link(ex+"month", vocab.HasBeginning, ex+"b"),
			stampInstant(ex+"b", "2023-03-01T00:00:00Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"first-week")
		require.NoError(t, err)
		assert.Equal(t, "2023-03-01T00:00:00", c.String())
	})

	t.Run("inverse meets", func(t *testing.T) {
		ont := build(t,
			link(ex+"before", vocab.IntervalMeets, ex+"after"),
			link(ex+"before", vocab.HasEnd, ex+"e"),
			stampInstant(ex+"e", "2023-03-22T10:35:34Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"after")
		require.NoError(t, err)
		assert.Equal(t, "2023-03-22T10:35:34", c.String())
	})

	t.Run("chain", func(t *testing.T) {
		ont := build(t,
			link(ex+"c", vocab.IntervalMetBy, ex+"b"),
			link(ex+"b", vocab.IntervalFinishes, ex+"a"),
			link(ex+"a", vocab.HasEnd, ex+"e"),
			stampInstant(ex+"e", "2023-03-22T10:35:34Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"c")
		require.NoError(t, err)
		assert.Equal(t, "2023-03-22T10:35:34", c.String())
	})

	t.Run("unknown", func(t *testing.T) {
		ont := build(t, link(ex+"a", vocab.IntervalMeets, ex+"b"))
		c, err := r.BeginningOfInterval(ont, ex+"a")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("cycle", func(t *testing.T) {
		ont := build(t,
			link(ex+"a", vocab.IntervalStarts, ex+"b"),
			link(ex+"b", vocab.IntervalStarts, ex+"a"),
		)
		_, err := r.BeginningOfInterval(ont, ex+"a")
		assert.ErrorIs(t, err, owltime.ErrIntervalRelationCycle)
	})

	t.Run("relation followed back is not a cycle", func(t *testing.T) {
		ont := build(t,
			link(ex+"a", vocab.IntervalMetBy, ex+"b"),
			link(ex+"b", vocab.IntervalMetBy, ex+"a"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"a")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("dead end falls back to next relation", func(t *testing.T) {
		ont := build(t,
			link(ex+"week", vocab.IntervalStarts, ex+"month"),
			link(ex+"week", vocab.IntervalMetBy, ex+"before"),
			link(ex+"before", vocab.HasEnd, ex+"e"),
			stampInstant(ex+"e", "2023-03-01T00:00:00Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"week")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "2023-03-01T00:00:00", c.String())
	})

	t.Run("cycle on one branch", func(t *testing.T) {
		ont := build(t,
			link(ex+"a", vocab.IntervalStarts, ex+"b"),
			link(ex+"b", vocab.IntervalStarts, ex+"a"),
			link(ex+"a", vocab.IntervalMetBy, ex+"z"),
			link(ex+"z", vocab.HasEnd, ex+"e"),
			stampInstant(ex+"e", "1939-09-01T04:45:00Z"),
		)
		c, err := r.BeginningOfInterval(ont, ex+"a")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "1939-09-01T04:45:00", c.String())
	})

	t.Run("unresolved relation", func(t *testing.T) {
		ont := build(t, link(ex+"a", vocab.IntervalStarts, ex+"b"))
		c, err := r.BeginningOfInterval(ont, ex+"a")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("self start", func(t *testing.T) {
		ont := build(t, link(ex+"a", vocab.IntervalStarts, ex+"a"))
		_, err := r.BeginningOfInterval(ont, ex+"a")
		assert.ErrorIs(t, err, owltime.ErrIntervalRelationCycle)
	})
}

func TestEndOfInterval(t *testing.T) {
	r := newResolver()

	t.Run("meets", func(t *testing.T) {
		ont := build(t,
			link(ex+"before", vocab.IntervalMeets, ex+"after"),
			link(ex+"after", vocab.HasBeginning, ex+"b"),
			stampInstant(ex+"b", "1939-09-01T08:01:01Z"),
		)
		c, err := r.EndOfInterval(ont, ex+"before")
		require.NoError(t, err)
		assert.Equal(t, "1939-09-01T08:01:01", c.String())
	})

	t.Run("finishes", func(t *testing.T) {
		axioms := numericInstant(ex+"e", vocab.UnixTime, "1679477734")
		axioms = append(axioms,
			link(ex+"last-week", vocab.IntervalFinishes, ex+"month"),
			link(ex+"month", vocab.HasEnd, ex+"e"),
		)
		c, err := r.EndOfInterval(build(t, axioms...), ex+"last-week")
		require.NoError(t, err)
		assert.Equal(t, "2023-03-22T09:35:34", c.String())
	})

	t.Run("instant is its own end", func(t *testing.T) {
		ont := build(t, stampInstant(ex+"i", "2023-03-22T10:35:34Z"))
		c, err := r.EndOfInterval(ont, ex+"i")
		require.NoError(t, err)
		assert.Equal(t, "2023-03-22T10:35:34", c.String())
	})

	t.Run("unregistered TRS propagates", func(t *testing.T) {
		axioms := numericInstant(ex+"e", ex+"Unknown", "1")
		axioms = append(axioms, link(ex+"span", vocab.HasEnd, ex+"e"))
		_, err := r.EndOfInterval(build(t, axioms...), ex+"span")
		assert.ErrorIs(t, err, owltime.ErrUnregisteredTRS)
	})
}
