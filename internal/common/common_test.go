package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasonCode(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unrecognized", err: ErrUnrecognizedSource, want: "unrecognized_source"},
		{name: "wrapped unparsable", err: fmt.Errorf("hdfc: %w", ErrUnparsableBody), want: "unparsable_body"},
		{name: "malformed", err: fmt.Errorf("amount %q: %w", ",", ErrMalformedAmount), want: "malformed_amount"},
		{name: "other", err: errors.New("boom"), want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonCode(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewUserError("could not save ledger", inner)

	assert.Equal(t, "could not save ledger: disk full", err.Error())
	assert.ErrorIs(t, err, inner)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not save ledger", userErr.UserMessage)

	assert.Equal(t, "bare", NewUserError("bare", nil).Error())
}

func TestCompileCaseInsensitive(t *testing.T) {
	re, err := CompileCaseInsensitive(`debited`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("INR 10 DEBITED"))

	re, err = CompileCaseInsensitive(`(?i)Bal`)
	require.NoError(t, err)
	assert.Equal(t, "(?i)Bal", re.String())

	_, err = CompileCaseInsensitive(`[unclosed`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	h, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.New(h).Info("parsed sms", "bank", "hdfc")
	assert.Contains(t, buf.String(), `"bank":"hdfc"`)

	_, err = NewHandler(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, slog.LevelDebug, "json")
	require.NoError(t, err)

	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		log  func()
		name string
		want []string
	}{
		{
			name: "info",
			log:  func() { LogInfo("Import complete", Fields{"saved": 3}) },
			want: []string{`"level":"INFO"`, `"msg":"Import complete"`, `"saved":3`},
		},
		{
			name: "debug",
			log:  func() { LogDebug("message skipped", Fields{"reason": "unparsable_body"}) },
			want: []string{`"level":"DEBUG"`, `"reason":"unparsable_body"`},
		},
		{
			name: "error",
			log:  func() { LogError(errors.New("disk full"), "Failed to close database", nil) },
			want: []string{`"level":"ERROR"`, `"error":"disk full"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
