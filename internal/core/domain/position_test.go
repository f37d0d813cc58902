package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/grid/internal/core/domain"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		pos  domain.Position
		want string
	}{
		{domain.Position{Row: 0, Col: 0}, "A1"},
		{domain.Position{Row: 0, Col: 25}, "Z1"},
		{domain.Position{Row: 0, Col: 26}, "AA1"},
		{domain.Position{Row: 1, Col: 27}, "AB2"},
		{domain.Position{Row: 9, Col: 51}, "AZ10"},
		{domain.Position{Row: 0, Col: 52}, "BA1"},
		{domain.Position{Row: 0, Col: 701}, "ZZ1"},
		{domain.Position{Row: 0, Col: 702}, "AAA1"},
		{domain.Position{Row: domain.MaxRows - 1, Col: domain.MaxCols - 1}, "XFD16384"},
		{domain.PositionNone, ""},
		{domain.Position{Row: domain.MaxRows, Col: 0}, ""},
		{domain.Position{Row: 0, Col: -1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		label string
		want  domain.Position
	}{
		{"A1", domain.Position{Row: 0, Col: 0}},
		{"Z1", domain.Position{Row: 0, Col: 25}},
		{"AA1", domain.Position{Row: 0, Col: 26}},
		{"B12", domain.Position{Row: 11, Col: 1}},
		{"XFD16384", domain.Position{Row: 16383, Col: 16383}},
		{"A00001", domain.PositionNone},
		{"A0001", domain.Position{Row: 0, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParsePosition(tt.label))
		})
	}
}

func TestParsePosition_Malformed(t *testing.T) {
	labels := []string{
		"",
		"A",
		"ABC",
		"1",
		"123",
		"A0",
		"a1",
		"A-1",
		"A+1",
		"1A",
		"A1B",
		"A 1",
		"ABCD1",
		"ZZZZ1",
		"A123456",
		"A16385",
		"XFE1",
		"ZZZ1",
		"A99999",
		"$A$1",
		"A1:B2",
	}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			assert.Equal(t, domain.PositionNone, domain.ParsePosition(label))
		})
	}
}

func TestPosition_RoundTrip(t *testing.T) {
	steps := []int{0, 1, 2, 24, 25, 26, 27, 51, 52, 675, 676, 701, 702, 703, 1000, 8191, 16382, 16383}
	for _, row := range steps {
		for _, col := range steps {
			p := domain.Position{Row: row, Col: col}
			got := domain.ParsePosition(p.String())
			if got != p {
				t.Fatalf("round trip of %+v via %q gave %+v", p, p.String(), got)
			}
		}
	}

	for col := range domain.MaxCols {
		p := domain.Position{Row: col % domain.MaxRows, Col: col}
		if got := domain.ParsePosition(p.String()); got != p {
			t.Fatalf("round trip of %+v via %q gave %+v", p, p.String(), got)
		}
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, domain.Position{}.IsValid())
	assert.True(t, domain.Position{Row: domain.MaxRows - 1, Col: domain.MaxCols - 1}.IsValid())
	assert.False(t, domain.PositionNone.IsValid())
	assert.False(t, domain.Position{Row: domain.MaxRows}.IsValid())
	assert.False(t, domain.Position{Col: domain.MaxCols}.IsValid())
}

func TestPosition_Order(t *testing.T) {
	a1 := domain.Position{Row: 0, Col: 0}
	b1 := domain.Position{Row: 0, Col: 1}
	a2 := domain.Position{Row: 1, Col: 0}

	assert.True(t, a1.Less(b1))
	assert.True(t, b1.Less(a2))
	assert.False(t, a2.Less(b1))
	assert.False(t, a1.Less(a1))
	assert.Equal(t, 0, a1.Compare(a1))

	got := []domain.Position{a2, b1, a1}
	slices.SortFunc(got, domain.Position.Compare)
	assert.Equal(t, []domain.Position{a1, b1, a2}, got)
}

func TestPosition_MarshalText(t *testing.T) {
	text, err := domain.Position{Row: 2, Col: 3}.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "D3", string(text))
}
