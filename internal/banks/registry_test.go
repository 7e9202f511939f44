package banks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimesh4992/Stack-sub000/internal/common"
)

func ids(sets []*CompiledSet) []BankID {
	out := make([]BankID, 0, len(sets))
	for _, s := range sets {
		out = append(out, s.ID)
	}
	return out
}

func TestDefaultRegistry(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultPriority(), ids(reg.Sets()))
	assert.Equal(t, len(DefaultPatternSets()), reg.Len())

	for _, cs := range reg.Sets() {
		t.Run(string(cs.ID), func(t *testing.T) {
			assert.NotEmpty(t, cs.Name)
			assert.NotEmpty(t, cs.Tokens)
			assert.NotEmpty(t, cs.Balance, "shared balance rules apply")
			assert.NotEmpty(t, cs.Account, "shared account rules apply")
			for _, rule := range append(append([]Rule{}, cs.Debit...), cs.Credit...) {
				assert.GreaterOrEqual(t, rule.AmountGroup, 1)
				assert.GreaterOrEqual(t, rule.MerchantGroup, 1)
			}
		})
	}

	upi, ok := reg.Get(UPI)
	require.True(t, ok)
	assert.True(t, upi.Fallback)

	_, ok = reg.Get("citi")
	assert.False(t, ok)
}

func TestWithPriority(t *testing.T) {
	tests := []struct {
		name     string
		priority []BankID
		want     []BankID
	}{
		{
			name:     "full reorder",
			priority: []BankID{ICICI, Kotak, Axis, SBI, HDFC, UPI},
			want:     []BankID{ICICI, Kotak, Axis, SBI, HDFC, UPI},
		},
		{
			name:     "partial keeps declaration order for the rest",
			priority: []BankID{Kotak},
			want:     []BankID{Kotak, HDFC, SBI, Axis, ICICI, UPI},
		},
		{
			name:     "duplicates ignored",
			priority: []BankID{SBI, SBI, HDFC},
			want:     []BankID{SBI, HDFC, Axis, Kotak, ICICI, UPI},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Default(WithPriority(tt.priority...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(reg.Sets()))
		})
	}

	_, err := Default(WithPriority("citi"))
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestNewRegistryValidation(t *testing.T) {
	valid := BankPatternSet{
		ID:     "yesbank",
		Name:   "YES Bank",
		Tokens: []string{"yes bank"},
		Debit:  []string{`Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited`},
	}

	tests := []struct {
		wantErr error
		mutate  func(s *BankPatternSet)
		name    string
	}{
		{name: "missing id", mutate: func(s *BankPatternSet) { s.ID = " " }, wantErr: common.ErrInvalidConfig},
		{name: "missing name", mutate: func(s *BankPatternSet) { s.Name = "" }, wantErr: common.ErrInvalidConfig},
		{name: "no tokens", mutate: func(s *BankPatternSet) { s.Tokens = nil }, wantErr: common.ErrInvalidConfig},
		{name: "empty token", mutate: func(s *BankPatternSet) { s.Tokens = []string{""} }, wantErr: common.ErrInvalidConfig},
		{name: "no rules", mutate: func(s *BankPatternSet) { s.Debit = nil }, wantErr: common.ErrInvalidConfig},
		{name: "bad regex", mutate: func(s *BankPatternSet) { s.Debit = []string{`(?P<amount>\d+`} }, wantErr: common.ErrInvalidPattern},
		{name: "no amount group", mutate: func(s *BankPatternSet) { s.Debit = []string{`debited`} }, wantErr: common.ErrInvalidPattern},
		{name: "no account group", mutate: func(s *BankPatternSet) { s.Account = []string{`A/c\s+\d+`} }, wantErr: common.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := valid
			tt.mutate(&set)
			_, err := NewRegistry([]BankPatternSet{set})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewRegistry([]BankPatternSet{valid, valid})
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})

	t.Run("normalizes id and tokens", func(t *testing.T) {
		set := valid
		set.ID = "YesBank"
		set.Tokens = []string{"  YES Bank "}
		reg, err := NewRegistry([]BankPatternSet{set})
		require.NoError(t, err)
		cs, ok := reg.Get("yesbank")
		require.True(t, ok)
		assert.Equal(t, []string{"yes bank"}, cs.Tokens)
	})

	t.Run("shared rules override", func(t *testing.T) {
		reg, err := NewRegistry([]BankPatternSet{valid},
			WithSharedRules([]string{`Avl\s+(?P<amount>\d+)`}, []string{`ac\s+(?P<account>\d+)`}))
		require.NoError(t, err)
		cs, _ := reg.Get("yesbank")
		require.Len(t, cs.Balance, 1)
		assert.Contains(t, cs.Balance[0].Regexp.String(), "Avl")
	})
}

const extensionYAML = `
banks:
  - id: yesbank
    name: YES Bank
    tokens: ["yes bank"]
    debit:
      - '(?:INR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited from a/c \S+ at (?P<merchant>[A-Z]+)'
    credit:
      - '(?:INR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited'
`

func TestParsePatterns(t *testing.T) {
	sets, err := ParsePatterns(strings.NewReader(extensionYAML))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, BankID("yesbank"), sets[0].ID)
	assert.Equal(t, []string{"yes bank"}, sets[0].Tokens)
	assert.Len(t, sets[0].Debit, 1)

	sets, err = ParsePatterns(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sets)

	_, err = ParsePatterns(strings.NewReader("banks:\n  - id: x\n    colour: red\n"))
	assert.Error(t, err)
}

func TestLoadPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(extensionYAML), 0o600))

	sets, err := LoadPatterns(path)
	require.NoError(t, err)

	reg, err := NewRegistry(Merge(DefaultPatternSets(), sets))
	require.NoError(t, err)
	assert.Equal(t, []BankID{HDFC, SBI, Axis, Kotak, ICICI, UPI, "yesbank"}, ids(reg.Sets()))

	_, err = LoadPatterns(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestMerge(t *testing.T) {
	base := DefaultPatternSets()

	tests := []struct {
		name     string
		id       BankID
		wantName string
		index    int
	}{
		{name: "same id", id: SBI, index: 1, wantName: "SBI Override"},
		{name: "upper case id", id: "HDFC", index: 0, wantName: "HDFC Override"},
		{name: "padded id", id: " Axis ", index: 2, wantName: "Axis Override"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override := BankPatternSet{ID: tt.id, Name: tt.wantName, Tokens: []string{"override"}, Debit: []string{`debited (?P<amount>\d+)`}}

			merged := Merge(base, []BankPatternSet{override})
			require.Len(t, merged, len(base))
			assert.Equal(t, tt.wantName, merged[tt.index].Name)

			reg, err := NewRegistry(merged)
			require.NoError(t, err)
			assert.Equal(t, len(base), reg.Len())
		})
	}

	assert.Equal(t, "State Bank of India", base[1].Name, "base is not modified")
}
