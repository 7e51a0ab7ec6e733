package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/schematicgo/internal/scanner"
	"github.com/specialistvlad/schematicgo/internal/schematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSchematic = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func scan(t *testing.T, rows ...string) *schematic.Tokens {
	t.Helper()
	tokens, err := scanner.Scan(schematic.NewGrid(rows...))
	require.NoError(t, err)
	return tokens
}

func scanText(t *testing.T, text string) *schematic.Tokens {
	t.Helper()
	tokens, err := scanner.Scan(schematic.ParseGrid(text))
	require.NoError(t, err)
	return tokens
}

func TestGearRatioSum_Example(t *testing.T) {
	t.Parallel()

	sum, err := GearRatioSum(scanText(t, exampleSchematic))

	require.NoError(t, err)
	assert.Equal(t, uint64(467835), sum)
}

func TestGears_Example(t *testing.T) {
	t.Parallel()

	gears, err := New(2).Gears(context.Background(), scanText(t, exampleSchematic))
	require.NoError(t, err)
	require.Len(t, gears, 3)

	assert.Equal(t, schematic.EnginePart{Value: '*', Column: 3, Row: 1}, gears[0].Part)
	assert.True(t, gears[0].Meshed())
	assert.Equal(t, uint64(467*35), gears[0].Ratio)

	// The gear next to 617 only touches one number.
	assert.False(t, gears[1].Meshed())
	assert.Zero(t, gears[1].Ratio)
	require.Len(t, gears[1].Numbers, 1)
	assert.Equal(t, uint64(617), gears[1].Numbers[0].Value)

	assert.Equal(t, uint64(755*598), gears[2].Ratio)
}

func TestGearRatioSum_AdjacencyCounts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rows     []string
		expected uint64
	}{
		{name: "no numbers", rows: []string{"...", ".*.", "..."}, expected: 0},
		{name: "one number", rows: []string{"12.", ".*.", "..."}, expected: 0},
		{name: "two numbers", rows: []string{"12.", ".*.", "..3"}, expected: 36},
		{name: "three numbers", rows: []string{"1.2", ".*.", "..3"}, expected: 0},
		{name: "four numbers", rows: []string{"1.2", "4*.", "..3"}, expected: 0},
		{name: "both sides on one row", rows: []string{"7*8"}, expected: 56},
		{name: "number touching through several cells counts once", rows: []string{"123", ".*.", "4.."}, expected: 492},
		{name: "other symbols are ignored", rows: []string{"12.", ".#.", "..3"}, expected: 0},
		{name: "gear at column zero", rows: []string{"5..", "*..", "6.."}, expected: 30},
		{name: "gear at the rightmost column", rows: []string{"..5", "..*", "..6"}, expected: 30},
		{name: "diagonal from the end of a span", rows: []string{"99.", "..*", "2.."}, expected: 0},
		{name: "diagonal on both ends", rows: []string{"99.", "..*", "...2"}, expected: 198},
		{name: "number two rows away is not adjacent", rows: []string{"11.", "...", ".*.", "..3"}, expected: 0},
		{name: "ragged short row", rows: []string{"2", "..*", "...3"}, expected: 0},
		{name: "two meshed gears sharing a number", rows: []string{"2*3*4"}, expected: 18},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sum, err := GearRatioSum(scan(t, tc.rows...))

			require.NoError(t, err)
			assert.Equal(t, tc.expected, sum)
		})
	}
}

func TestGearRatioSum_Empty(t *testing.T) {
	t.Parallel()

	sum, err := GearRatioSum(&schematic.Tokens{})
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestGearRatioSum_WorkersAgree(t *testing.T) {
	t.Parallel()

	// Tile the example so there are plenty of gears to spread across workers.
	var rows []string
	example := schematic.ParseGrid(exampleSchematic)
	for i := 0; i < 20; i++ {
		for y := 0; y < example.Height(); y++ {
			rows = append(rows, string(example.Row(y))+string(example.Row(y)))
		}
		rows = append(rows, "....................")
	}
	tokens := scan(t, rows...)

	expected, err := New(1).GearRatioSum(context.Background(), tokens)
	require.NoError(t, err)
	assert.NotZero(t, expected)

	for _, workers := range []int{0, 2, 3, 8, 64} {
		sum, err := New(workers).GearRatioSum(context.Background(), tokens)
		require.NoError(t, err)
		assert.Equal(t, expected, sum, "workers=%d", workers)
	}
}

func TestGearRatioSum_Idempotent(t *testing.T) {
	t.Parallel()

	tokens := scanText(t, exampleSchematic)
	a := New(4)

	first, err := a.GearRatioSum(context.Background(), tokens)
	require.NoError(t, err)
	second, err := a.GearRatioSum(context.Background(), tokens)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGearRatioSum_Overflow(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		rows []string
	}{
		{name: "product", rows: []string{"4294967296*4294967296"}},
		{name: "sum", rows: []string{"4294967295*4294967295*4294967295*4294967295*4294967295"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := GearRatioSum(scan(t, tc.rows...))

			require.Error(t, err)
			assert.True(t, errors.Is(err, schematic.ErrNumericOverflow))
		})
	}
}

func TestGears_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(2).Gears(ctx, scanText(t, exampleSchematic))

	require.ErrorIs(t, err, context.Canceled)
}

func TestPartNumberSum(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected uint64
	}{
		{name: "example", text: exampleSchematic, expected: 4361},
		{name: "number touching two symbols counts once", text: "#12#", expected: 12},
		{name: "any symbol counts", text: "5.\n.$", expected: 5},
		{name: "isolated number", text: "5..\n..$", expected: 0},
		{name: "empty", text: "", expected: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sum, err := PartNumberSum(scanText(t, tc.text))

			require.NoError(t, err)
			assert.Equal(t, tc.expected, sum)
		})
	}
}

func TestPartNumberSum_Overflow(t *testing.T) {
	t.Parallel()

	_, err := PartNumberSum(scan(t, "18446744073709551615#1"))

	require.ErrorIs(t, err, schematic.ErrNumericOverflow)
}
