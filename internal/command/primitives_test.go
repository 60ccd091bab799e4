package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected string
		input    string
		value    string
		rest     string
		ok       bool
	}{
		{name: "exact", expected: "spent", input: "spent 10", value: "spent", rest: " 10", ok: true},
		{name: "upper", expected: "spent", input: "SPENT 10", value: "SPENT", rest: " 10", ok: true},
		{name: "mixed", expected: "spent", input: "sPeNt", value: "sPeNt", rest: "", ok: true},
		{name: "short input", expected: "spent", input: "spe", rest: "spe"},
		{name: "empty input", expected: "spent", input: "", rest: ""},
		{name: "mismatch", expected: "spent", input: "xspent", rest: "xspent"},
		{name: "digits", expected: "8th pine", input: "8TH PINE", value: "8TH PINE", rest: "", ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, rest, ok := Literal(tc.expected)(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.value, value)
			require.Equal(t, tc.rest, rest)
		})
	}
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	huge := "1" + strings.Repeat("0", 400)

	testCases := []struct {
		input string
		value float64
		rest  string
		ok    bool
	}{
		{input: "24", value: 24, ok: true},
		{input: "24.78", value: 24.78, ok: true},
		{input: "24.", value: 24, ok: true},
		{input: "24.78.9", value: 24.78, rest: ".9", ok: true},
		{input: "007", value: 7, ok: true},
		{input: "5000 extra", value: 5000, rest: " extra", ok: true},
		{input: "1e5", value: 1, rest: "e5", ok: true},
		{input: ".24", rest: ".24"},
		{input: "-4", rest: "-4"},
		{input: "+4", rest: "+4"},
		{input: "total", rest: "total"},
		{input: "", rest: ""},
		{input: huge, rest: huge},
	}

	for _, tc := range testCases {
		name := tc.input
		if len(name) > 16 {
			name = name[:16] + "..."
		}
		t.Run(name, func(t *testing.T) {
			value, rest, ok := Decimal()(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.value, value)
			require.Equal(t, tc.rest, rest)
		})
	}
}

func TestSpace(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		rest  string
		ok    bool
	}{
		{name: "single", input: " x", rest: "x", ok: true},
		{name: "run", input: " \t  x", rest: "x", ok: true},
		{name: "no-break space", input: "\u00a0x", rest: "x", ok: true},
		{name: "only spaces", input: "   ", rest: "", ok: true},
		{name: "none", input: "x", rest: "x"},
		{name: "empty", input: "", rest: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, rest, ok := Space()(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.rest, rest)
		})
	}
}

func TestAltFirstMatchWins(t *testing.T) {
	t.Parallel()

	p := Alt(Literal("mem"), Literal("memorial"))
	value, rest, ok := p("memorial")
	require.True(t, ok)
	require.Equal(t, "mem", value)
	require.Equal(t, "orial", rest)

	_, rest, ok = p("union")
	require.False(t, ok)
	require.Equal(t, "union", rest)
}

func TestCombinatorsDoNotConsumeOnFailure(t *testing.T) {
	t.Parallel()

	const input = "spent tota"

	_, rest, ok := SeparatedPair(Literal("spent"), Space(), Literal("total"))(input)
	require.False(t, ok)
	require.Equal(t, input, rest)

	_, rest, ok = Preceded(Literal("spent"), Preceded(Space(), Decimal()))(input)
	require.False(t, ok)
	require.Equal(t, input, rest)

	_, rest, ok = Sequence(Literal("spent"), Literal("x"))(input)
	require.False(t, ok)
	require.Equal(t, input, rest)

	_, rest, ok = Map(Literal("budget"), strings.ToUpper)(input)
	require.False(t, ok)
	require.Equal(t, input, rest)
}

func TestOpt(t *testing.T) {
	t.Parallel()

	p := Opt(Preceded(Space(), Literal("grocery")))

	v, rest, ok := p(" grocery")
	require.True(t, ok)
	require.True(t, v.Valid)
	require.Equal(t, "grocery", v.Value)
	require.Equal(t, "", rest)

	v, rest, ok = p(" grocerystore")
	require.True(t, ok)
	require.True(t, v.Valid)
	require.Equal(t, "store", rest)

	v, rest, ok = p(" bread")
	require.True(t, ok)
	require.False(t, v.Valid)
	require.Equal(t, " bread", rest)
}

func TestComplete(t *testing.T) {
	t.Parallel()

	p := Complete(Decimal())

	v, rest, ok := p("12.5  ")
	require.True(t, ok)
	require.Equal(t, 12.5, v)
	require.Equal(t, "", rest)

	_, rest, ok = p("12.5 dollars")
	require.False(t, ok)
	require.Equal(t, "12.5 dollars", rest)
}
