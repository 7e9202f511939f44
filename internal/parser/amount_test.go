package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimesh4992/Stack-sub000/internal/common"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1,250.00", want: "1250"},
		{input: "1250.00", want: "1250"},
		{input: "500", want: "500"},
		{input: " 12,345.67 ", want: "12345.67"},
		{input: "1,23,456.28", want: "123456.28"},
		{input: "0.5", want: "0.5"},
		{input: "", wantErr: true},
		{input: ",", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "0", wantErr: true},
		{input: "0.00", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "12.345", wantErr: true},
		{input: "1e3", wantErr: true},
		{input: "1.234.56", wantErr: true},
		{input: "1250.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrMalformedAmount)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmountSeparatorsDoNotChangeValue(t *testing.T) {
	with, err := ParseAmount("1,250.00")
	require.NoError(t, err)
	without, err := ParseAmount("1250.00")
	require.NoError(t, err)
	assert.True(t, with.Equal(without))
}
