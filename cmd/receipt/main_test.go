package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/angelmondragon/cart-receipt/pkg/config"
	pkgerrors "github.com/angelmondragon/cart-receipt/pkg/errors"
	"github.com/angelmondragon/cart-receipt/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Options{ServiceName: "receipt-test", Level: logger.ParseLevel("debug"), Format: logger.FormatJSON, Output: buf})
}

func TestRunPrintsSampleTicket(t *testing.T) {
	logs := &bytes.Buffer{}
	out := &bytes.Buffer{}
	metricsPath := filepath.Join(t.TempDir(), "receipt.prom")

	cfg := &config.Config{Metrics: config.MetricsConfig{TextfilePath: metricsPath}}
	require.NoError(t, run(context.Background(), cfg, newTestLogger(logs), out))

	ticket := out.String()
	assert.True(t, strings.HasPrefix(ticket, "# Item"), "ticket %q", ticket)
	assert.True(t, strings.HasSuffix(ticket, "$550.11 \n"), "ticket %q", ticket)
	assert.Contains(t, logs.String(), `"source":"sample"`)
	assert.Contains(t, logs.String(), `"cart_id"`)
	assert.Contains(t, logs.String(), `"total":"$550.11"`)
	assert.Contains(t, logs.String(), `"items":4`)

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "cart_tickets_rendered_total 1")
}

func TestRunReportsInvalidSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - title: Apple\n    unit_price: 0.99\n    quantity: 0\n    category: new\n"), 0o600))

	logs := &bytes.Buffer{}
	out := &bytes.Buffer{}
	cfg := &config.Config{Seed: config.SeedConfig{File: path}}

	err := run(context.Background(), cfg, newTestLogger(logs), out)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, 1, pkgerrors.MetadataFor(pkgerrors.As(err).Code()).ExitCode)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "cart item rejected")
}

func TestRunMissingSeedFile(t *testing.T) {
	cfg := &config.Config{Seed: config.SeedConfig{File: filepath.Join(t.TempDir(), "nope.yaml")}}

	err := run(context.Background(), cfg, newTestLogger(&bytes.Buffer{}), &bytes.Buffer{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestExitWithPrintsPublicMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "validation", err: pkgerrors.New(pkgerrors.CodeValidation, "invalid cart items"), code: 1, message: "receipt: validation failed\n"},
		{name: "not found", err: pkgerrors.New(pkgerrors.CodeNotFound, "seed file not found"), code: 1, message: "receipt: resource not found\n"},
		{name: "untyped", err: errors.New("disk full"), code: 2, message: "receipt: internal error\n"},
	}

	for _, tt := range tests {
		stderr := &bytes.Buffer{}
		assert.Equal(t, tt.code, exitWith(stderr, tt.err), tt.name)
		assert.Equal(t, tt.message, stderr.String(), tt.name)
	}
}
