package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/minuterie/internal/adapters/console"
	"github.com/aretw0/minuterie/pkg/ports"
)

var (
	_ ports.Input  = (*console.Keyboard)(nil)
	_ ports.Output = (*console.Light)(nil)
)

func nop() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestKeyboard_SpaceLatchesPress(t *testing.T) {
	k := console.NewKeyboard(strings.NewReader("x "), nil, nop())
	require.NoError(t, k.Run(context.Background()))

	assert.True(t, k.Asserted())
	assert.False(t, k.Asserted(), "one key press is one sample")
}

func TestKeyboard_Quit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Letter", "q "},
		{"Escape", "\x1b "},
		{"Ctrl C", "\x03 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quits := 0
			k := console.NewKeyboard(strings.NewReader(tt.input), func() { quits++ }, nop())
			require.NoError(t, k.Run(context.Background()))

			assert.Equal(t, 1, quits)
			assert.False(t, k.Asserted(), "keys after quit are not read")
		})
	}
}

func TestKeyboard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	k := console.NewKeyboard(strings.NewReader(" "), nil, nop())
	require.NoError(t, k.Run(ctx))
	assert.False(t, k.Asserted())
}

func TestRawMode_NotATerminal(t *testing.T) {
	restore, err := console.RawMode(-1)
	require.NoError(t, err)
	assert.NoError(t, restore())
	assert.False(t, console.IsTerminal(-1))
}

func TestLight(t *testing.T) {
	var buf bytes.Buffer
	l := console.NewLight(&buf, termenv.WithProfile(termenv.Ascii))

	require.NoError(t, l.Set(true))
	assert.True(t, l.IsOn())
	assert.Contains(t, buf.String(), "LIGHT ON")

	buf.Reset()
	require.NoError(t, l.Set(false))
	assert.False(t, l.IsOn())
	assert.Contains(t, buf.String(), "light off")
}
