package instance_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bartolsthoorn/transportlp/instance"
	"github.com/stretchr/testify/require"
)

const small = `# generated by the instance tool
instance_name = "small-1";
d = 2;
r = 2;
SCj = [10 20];
Dk = [5 25];
Cjk = [1 2
3 4];
`

func TestParse_Small(t *testing.T) {
	in, err := instance.Parse(strings.Split(small, "\n"))
	require.NoError(t, err)

	require.Equal(t, &instance.Instance{
		Name:   "small-1",
		Depots: 2,
		Stores: 2,
		Supply: []int{10, 20},
		Demand: []int{5, 25},
		Cost:   [][]int{{1, 2}, {3, 4}},
	}, in)
	require.True(t, in.Balanced())
	require.Equal(t, 30, in.TotalSupply())
	require.Equal(t, 30, in.TotalDemand())
}

func TestRead_MatchesParse(t *testing.T) {
	fromLines, err := instance.Parse(strings.Split(small, "\n"))
	require.NoError(t, err)

	fromReader, err := instance.Read(strings.NewReader(strings.ReplaceAll(small, "\n", "\r\n")))
	require.NoError(t, err)
	require.Equal(t, fromLines, fromReader)
}

func TestParse_WrappedCostTable(t *testing.T) {
	text := `instance_name = "wrapped";
d = 2;
r = 3;
SCj = [15 15];
Dk = [10 10 10];
Cjk = [
  [ 7 8
    9 ] [ 1
  2 3 ] ];
`
	in, err := instance.Parse(strings.Split(text, "\n"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{7, 8, 9}, {1, 2, 3}}, in.Cost)
}

func TestParse_SingleLineCostTable(t *testing.T) {
	lines := []string{
		`instance_name = "one-line";`,
		"d = 1;",
		"r = 3;",
		"SCj = [9];",
		"Dk = [3 3 3];",
		"Cjk = [[4 5 6]];",
	}
	in, err := instance.Parse(lines)
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, 5, 6}}, in.Cost)
}

func TestParse_KeyOrderDoesNotMatter(t *testing.T) {
	lines := []string{
		"Cjk = [1 2",
		"3 4];",
		"Dk = [5 25];",
		"SCj = [10 20];",
		"r = 2;",
		"d = 2;",
		`instance_name = "reordered";`,
	}
	in, err := instance.Parse(lines)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, in.Cost)
	require.Equal(t, "reordered", in.Name)
}

func TestParse_NegativeSupplyAccepted(t *testing.T) {
	text := strings.Replace(small, "SCj = [10 20];", "SCj = [-10 20];", 1)
	in, err := instance.Parse(strings.Split(text, "\n"))
	require.NoError(t, err)
	require.Equal(t, []int{-10, 20}, in.Supply)
}

func TestParse_NegativeCostSignDropped(t *testing.T) {
	// "-2" is not an all-digit token, so it is skipped and the table comes
	// up one value short.
	text := strings.Replace(small, "Cjk = [1 2", "Cjk = [1 -2", 1)
	_, err := instance.Parse(strings.Split(text, "\n"))

	var fe *instance.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, instance.KeyCost, fe.Key)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		key     string
		msg     string
	}{
		{"missing name", [2]string{`instance_name = "small-1";`, ""}, instance.KeyName, "missing declaration"},
		{"missing costs", [2]string{"Cjk = [1 2\n3 4];", ""}, instance.KeyCost, "missing declaration"},
		{"bad depot count", [2]string{"d = 2;", "d = two;"}, instance.KeyDepots, `invalid integer "two"`},
		{"zero stores", [2]string{"r = 2;", "r = 0;"}, instance.KeyStores, "must be positive"},
		{"bad supply token", [2]string{"SCj = [10 20];", "SCj = [10 2x];"}, instance.KeySupply, `invalid integer "2x"`},
		{"short supply", [2]string{"SCj = [10 20];", "SCj = [10];"}, instance.KeySupply, "got 1 capacities, want d = 2"},
		{"long demand", [2]string{"Dk = [5 25];", "Dk = [5 20 5];"}, instance.KeyDemand, "got 3 demands, want r = 2"},
		{"short cost table", [2]string{"3 4];", "3];"}, instance.KeyCost, "cost table is 2x1 (3 values), want 2x2"},
		{"extra cost row", [2]string{"3 4];", "3 4 5 6];"}, instance.KeyCost, "cost table is 3x2 (6 values), want 2x2"},
		{"unterminated cost table", [2]string{"3 4];", "3 4"}, instance.KeyCost, "not terminated"},
		{"no equals sign", [2]string{`instance_name = "small-1";`, "instance_name small-1"}, instance.KeyName, "missing '='"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			text := strings.Replace(small, tc.replace[0], tc.replace[1], 1)
			_, err := instance.Parse(strings.Split(text, "\n"))
			require.Error(t, err)

			var fe *instance.FormatError
			require.True(t, errors.As(err, &fe), "want *FormatError, got %T", err)
			require.Equal(t, tc.key, fe.Key)
			require.Contains(t, fe.Error(), tc.msg)
		})
	}
}

func TestParse_DimensionMismatchFromSpecExample(t *testing.T) {
	lines := []string{
		`instance_name = "short";`,
		"d = 2;",
		"r = 3;",
		"SCj = [1 1];",
		"Dk = [1 1 0];",
		"Cjk = [1 2 3",
		"4 5];",
	}
	_, err := instance.Parse(lines)

	var fe *instance.FormatError
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe.Msg, "2x2 (5 values), want 2x3")
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := instance.Parse([]string{"instance_name = \"\xff\";"})
	var fe *instance.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 1, fe.Line)
}

func TestParse_LaterCostBlockReplacesEarlier(t *testing.T) {
	text := small + "Cjk = [9 9 9 9];\n"
	in, err := instance.Parse(strings.Split(text, "\n"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 9}, {9, 9}}, in.Cost)
}
