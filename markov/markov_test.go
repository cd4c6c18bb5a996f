// SPDX-License-Identifier: MIT
package markov_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/pichance/automaton"
	"github.com/katalvlaran/pichance/markov"
	"github.com/katalvlaran/pichance/matrix"
	"github.com/stretchr/testify/require"
)

// samplePatterns mixes hand-picked overlap shapes with seeded random digits.
func samplePatterns(t *testing.T) []string {
	t.Helper()
	out := []string{"7", "11", "12", "121", "1212", "0000", "99999", "1211", "0805121215", "3141592653589793"}
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 20; i++ {
		var sb strings.Builder
		n := 1 + rng.Intn(40)
		for j := 0; j < n; j++ {
			sb.WriteByte(byte('0' + rng.Intn(3))) // small alphabet → many self-overlaps
		}
		out = append(out, sb.String())
	}

	return out
}

// TestBuild_Properties checks shape, entry granularity and row deficits for
// every sampled pattern.
func TestBuild_Properties(t *testing.T) {
	t.Parallel()

	for _, s := range samplePatterns(t) {
		s := s
		t.Run(s, func(t *testing.T) {
			p := automaton.MustParsePattern(s)
			M, err := markov.Build(p)
			require.NoError(t, err)

			m := p.Len()
			require.Equal(t, m, M.Rows())
			require.Equal(t, m, M.Cols())

			a, err := automaton.Build(p)
			require.NoError(t, err)
			deficits, err := markov.Deficits(a)
			require.NoError(t, err)
			sums, err := matrix.RowSums(M)
			require.NoError(t, err)

			for i := 0; i < m; i++ {
				for j := 0; j < m; j++ {
					v, err := M.At(i, j)
					require.NoError(t, err)
					require.GreaterOrEqual(t, v, 0.0)
					tenths := v * 10
					require.InDeltaf(t, math.Round(tenths), tenths, 1e-9, "entry (%d,%d)=%g", i, j, v)
				}
				require.LessOrEqual(t, sums[i], 1+markov.Tolerance)
				require.InDeltaf(t, 1-deficits[i], sums[i], markov.Tolerance, "row %d", i)
			}
			require.NoError(t, matrix.ValidateSubStochastic(M, markov.Tolerance))
		})
	}
}

func TestBuild_KnownMatrices(t *testing.T) {
	t.Parallel()

	M, err := markov.Build(automaton.MustParsePattern("7"))
	require.NoError(t, err)
	v, err := M.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.9, v, markov.Tolerance)

	// "11": state 0 stays on 9 digits and moves on '1'; state 1 falls back on 9 digits.
	M, err = markov.Build(automaton.MustParsePattern("11"))
	require.NoError(t, err)
	want := [][]float64{{0.9, 0.1}, {0.9, 0}}
	for i := range want {
		for j := range want[i] {
			v, err := M.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, markov.Tolerance)
		}
	}

	// "12": from state 1, '1' keeps a partial match of length 1.
	M, err = markov.Build(automaton.MustParsePattern("12"))
	require.NoError(t, err)
	v, err = M.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.1, v, markov.Tolerance)
}

func TestBuildExact_MatchesFloat(t *testing.T) {
	t.Parallel()

	E, err := markov.BuildExact(automaton.MustParsePattern("11"))
	require.NoError(t, err)
	require.Equal(t, "[9/10, 1/10]\n[9/10, 0]\n", E.String())

	for _, s := range samplePatterns(t) {
		p := automaton.MustParsePattern(s)
		exact, err := markov.BuildExact(p)
		require.NoError(t, err)
		approx, err := markov.Build(p)
		require.NoError(t, err)

		f, err := exact.Float()
		require.NoError(t, err)
		for i := 0; i < p.Len(); i++ {
			for j := 0; j < p.Len(); j++ {
				fv, _ := f.At(i, j)
				av, _ := approx.At(i, j)
				require.InDelta(t, fv, av, markov.Tolerance)
			}
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	_, err := markov.Build(automaton.Pattern{})
	require.ErrorIs(t, err, automaton.ErrInvalidPattern)
	_, err = markov.BuildExact(automaton.Pattern{})
	require.ErrorIs(t, err, automaton.ErrInvalidPattern)
	_, err = markov.FromAutomaton(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = markov.Deficits(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
