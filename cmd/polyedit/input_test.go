package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/polyedit/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolygon(t *testing.T) {
	in := strings.NewReader("# square\n0 0\n10 0\n\n10 10\n0 10\n")
	poly, err := readPolygon(in)
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, poly.Points)

	_, err = readPolygon(strings.NewReader("1 2 3\n"))
	assert.EqualError(t, err, `line 1: expected "x y", got "1 2 3"`)

	_, err = readPolygon(strings.NewReader("1 nope\n"))
	assert.Error(t, err)
}

func TestReadSVGPolygon(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <polygon points="0,0 100,0 50,80" />
</svg>`
	poly, err := readSVGPolygon(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 80}}, poly.Points)

	_, err = readSVGPolygon(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.EqualError(t, err, "no polygon found in svg")
}

func TestReadScript(t *testing.T) {
	script := `
# grab the first vertex and move it
350 150 true false
360 160 1 0
360 160 false false
method ear clipping
triangulate
`
	steps, err := readScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, internal.Input{X: 350, Y: 150, Primary: true}, *steps[0].input)
	assert.Equal(t, internal.Input{X: 360, Y: 160, Primary: true}, *steps[1].input)
	assert.Equal(t, internal.EarClipping, *steps[3].method)
	assert.True(t, steps[4].triangulate)

	_, err = readScript(strings.NewReader("method bogus\n"))
	assert.ErrorIs(t, err, internal.ErrUnknownMethod)
}

func TestReplay(t *testing.T) {
	script := `350 150 true false
360 160 true false
360 160 false false
triangulate
`
	steps, err := readScript(strings.NewReader(script))
	require.NoError(t, err)

	session, err := internal.NewSession(internal.DefaultPolygon(), internal.DefaultConfig())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, replay(session, steps, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "frame 1: action=grab nearest=0 dragging", lines[0])
	assert.Equal(t, "frame 2: action=none nearest=0 dragging", lines[1])
	assert.Equal(t, "frame 3: action=none nearest=0 released", lines[2])
	assert.Contains(t, lines[3], "1/1 triangles")

	assert.Equal(t, internal.Point{X: 360, Y: 160}, session.Polygon().Points[0])
}
