package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func TestRandomGames_CasesRoundTrip(t *testing.T) {
	cases := randomGames(rand.New(rand.NewSource(7)), 3, 80)
	require.NotEmpty(t, cases)
	assert.Equal(t, checkers.NewBoard().Encode(), cases[0].Board)
	assert.Equal(t, "white", cases[0].ToMove)

	for _, tc := range cases {
		b, err := checkers.DecodeBoard(tc.Board)
		require.NoError(t, err)
		side, err := checkers.ParseSide(tc.ToMove)
		require.NoError(t, err)
		assert.Equal(t, b.GetAllMoves(side), tc.Moves)
	}
}
