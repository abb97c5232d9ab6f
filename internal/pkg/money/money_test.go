//go:build unit

package money_test

import (
	"testing"

	"driveshare/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		cents int64
		errIs error
	}{
		{name: "two fractional digits", in: "100.00", cents: 10000},
		{name: "one fractional digit", in: "9.5", cents: 950},
		{name: "no fractional part", in: "42", cents: 4200},
		{name: "negative amount", in: "-3.25", cents: -325},
		{name: "surrounding whitespace", in: " 12.34 ", cents: 1234},
		{name: "empty string", in: "", errIs: money.ErrInvalidAmount},
		{name: "three fractional digits", in: "1.005", errIs: money.ErrInvalidAmount},
		{name: "not a number", in: "abc", errIs: money.ErrInvalidAmount},
		{name: "missing whole part", in: ".50", errIs: money.ErrInvalidAmount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := money.Parse(c.in)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.cents, m.Cents())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1234.56", money.FromCents(123456).String())
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "0.00", money.FromCents(0).String())
	assert.Equal(t, "-3.25", money.FromCents(-325).String())
}

func TestMoney_Percent(t *testing.T) {
	cases := []struct {
		name    string
		cents   int64
		percent int
		want    int64
	}{
		{name: "exact tenth", cents: 30000, percent: 10, want: 3000},
		{name: "rounds half up", cents: 1005, percent: 10, want: 101},
		{name: "rounds down below half", cents: 1004, percent: 10, want: 100},
		{name: "zero percent", cents: 30000, percent: 0, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, money.FromCents(c.cents).Percent(c.percent).Cents())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := money.FromCents(1050)
	b := money.FromCents(450)

	assert.Equal(t, int64(1500), a.Add(b).Cents())
	assert.Equal(t, int64(600), a.Sub(b).Cents())
	assert.Equal(t, int64(3150), a.MulInt(3).Cents())
	assert.True(t, a.IsPositive())
	assert.False(t, money.FromCents(0).IsPositive())
}

func TestMoney_JSON(t *testing.T) {
	m := money.FromCents(30000)
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"300.00"`, string(data))

	var parsed money.Money
	require.NoError(t, parsed.UnmarshalJSON([]byte(`"270.00"`)))
	assert.Equal(t, int64(27000), parsed.Cents())

	require.Error(t, parsed.UnmarshalJSON([]byte(`"1.005"`)))
}
