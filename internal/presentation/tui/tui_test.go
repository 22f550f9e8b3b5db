package tui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/minuterie/internal/presentation/tui"
	"github.com/aretw0/minuterie/pkg/lamp"
)

func TestDescribeMarkdown(t *testing.T) {
	md := tui.DescribeMarkdown("Lamp", lamp.NewTable(), lamp.Names(), &tui.Timing{Period: "200ms", Hold: "4s", HoldCycles: 20})

	assert.Contains(t, md, "# Lamp")
	assert.Contains(t, md, "(20 cycles)")
	assert.Contains(t, md, "- `0` off (initial)")
	assert.Contains(t, md, "| 1 | on | `button_pressed` | on | `light_on` |")
	assert.Contains(t, md, "| 2 | on | `timer_expired` | off | `light_off` |")
}

func TestRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(false, 80)
	require.NoError(t, err)

	out, err := render(tui.DescribeMarkdown("Lamp", lamp.NewTable(), lamp.Names(), nil))
	require.NoError(t, err)
	assert.Contains(t, out, "Lamp")
	assert.Contains(t, out, "timer_expired")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "timed light controller v1.2.3")
}
