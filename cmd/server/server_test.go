package main

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/live"
	"github.com/marben/revolving_ifs/render"
)

func testConfig() config {
	cfg := defaultConfig()
	cfg.tick = 5 * time.Millisecond
	cfg.plotSize = 64
	cfg.pickerSize = 64
	cfg.angleSize = 48
	cfg.engine.MaxGenerations = 3
	cfg.static = "../../static"
	return cfg
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newMux(testConfig(), newHub(2)))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return resp
}

func TestFramePNG(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/frame.png?preset=gamma&gen=4&size=80")
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestFrameSVG(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/frame.svg?re=0.5&im=0.5&n=3&gen=2&size=100")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	s := string(body)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(s), "<?xml"))
	assert.Contains(t, s, "<svg")
	assert.Contains(t, s, "24 numbers plotted to 2 terms")
	assert.Contains(t, s, "</svg>")
}

func TestFrameFormulas(t *testing.T) {
	srv := newTestServer(t)
	q := url.Values{"f1": {`\alpha z`}, "f2": {`\alpha z + 1`}, "gen": {"2"}, "size": {"32"}}
	resp := get(t, srv, "/frame.png?"+q.Encode())
	_, err := png.Decode(resp.Body)
	require.NoError(t, err)

	// the caption shows the formulas that were plotted
	resp = get(t, srv, "/frame.svg?"+q.Encode())
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `f2(z) = \alpha z + 1`)
	assert.NotContains(t, string(body), "pi/2")
}

func TestQueryEquations(t *testing.T) {
	cfg := testConfig()

	iq := parseImageQuery(url.Values{"f2": {`\alpha z + 1`}}, cfg, defaultGIFSize)
	eq := iq.equations()
	assert.Equal(t, `f1(z) = \alpha z`, eq.F1)
	assert.Equal(t, `f2(z) = \alpha z + 1`, eq.F2)

	iq = parseImageQuery(url.Values{"f2": {`\beta z`}, "n": {"3"}}, cfg, defaultGIFSize)
	assert.Equal(t, render.FormatEquations(iq.params), iq.equations())
	assert.Contains(t, iq.equations().F2, "pi/3")
}

func TestGenerationsCappedByServer(t *testing.T) {
	cfg := testConfig()
	q := url.Values{"gen": {"24"}}

	iq := parseImageQuery(q, cfg, defaultImageSize)
	assert.Equal(t, cfg.engine.MaxGenerations, iq.generations)
	assert.Equal(t, cfg.engine.MaxGenerations, iq.engine.MaxGenerations)

	st, err := iq.state()
	require.NoError(t, err)
	assert.Equal(t, cfg.engine.MaxGenerations, st.Iteration)
	assert.Len(t, st.Points, 1<<cfg.engine.MaxGenerations)

	srv := newTestServer(t)
	resp := get(t, srv, "/construction.gif?gen=24&size=16&workers=2")
	anim, err := gif.DecodeAll(resp.Body)
	require.NoError(t, err)
	assert.Len(t, anim.Image, cfg.engine.MaxGenerations+1)
}

func TestConstructionGIF(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/construction.gif?gen=3&size=32&workers=2")
	assert.Equal(t, "image/gif", resp.Header.Get("Content-Type"))

	anim, err := gif.DecodeAll(resp.Body)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 4)
}

func TestDeltasPNG(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv, "/deltas.png?n=3")
	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, defaultGIFSize, img.Bounds().Dx())
}

func TestParseParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  revolving.Params
	}{
		{"empty", "", revolving.DefaultParams},
		{"preset", "preset=gamma", revolving.Gamma},
		{"unknown preset", "preset=nope", revolving.DefaultParams},
		{"override", "preset=expanding&n=5", revolving.Params{Alpha: revolving.C(1, 1), N: 5}},
		{"alpha", "re=0.25&im=-0.75", revolving.Params{Alpha: revolving.C(0.25, -0.75), N: 2}},
		{"invalid n", "n=x", revolving.DefaultParams},
		{"zero n", "n=0", revolving.Params{Alpha: revolving.DefaultParams.Alpha, N: 1}},
		{"large n", "n=99", revolving.Params{Alpha: revolving.DefaultParams.Alpha, N: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, parseParams(q))
		})
	}
}

func TestParseImageQuery(t *testing.T) {
	cfg := testConfig()
	parse := func(s string) imageQuery {
		q, err := url.ParseQuery(s)
		require.NoError(t, err)
		return parseImageQuery(q, cfg, defaultImageSize)
	}

	iq := parse("")
	assert.Equal(t, cfg.engine.MaxGenerations, iq.generations)
	assert.Equal(t, defaultImageSize, iq.size)
	assert.GreaterOrEqual(t, iq.workers, 1)

	assert.Equal(t, minImageSize, parse("size=3").size)
	assert.Equal(t, maxImageSize, parse("size=100000").size)
	assert.Equal(t, cfg.engine.MaxGenerations, parse("gen=x").generations)
	assert.Equal(t, 2, parse("gen=2").engine.MaxGenerations)
	assert.Equal(t, maxWorkers, parse("workers=1000").workers)
	assert.GreaterOrEqual(t, parse("workers=0").workers, 1)

	f1OfOne := func(q url.Values) revolving.Complex {
		f1, _ := parseImageQuery(q, cfg, defaultImageSize).engine.System(revolving.Params{Alpha: revolving.C(2, 0), N: 2})
		return f1(revolving.One)
	}
	assert.Equal(t, revolving.C(3, 0), f1OfOne(url.Values{"f1": {`\alpha z + 1`}}))
	// unbound variable keeps the built-in maps
	assert.Equal(t, revolving.C(2, 0), f1OfOne(url.Values{"f1": {`\beta z`}}))
}

func TestHub(t *testing.T) {
	h := newHub(1)
	h.join()
	h.join()
	assert.Equal(t, 2, h.activeSessions())
	h.leave()
	assert.Equal(t, 1, h.activeSessions())

	require.NoError(t, h.acquire(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, h.acquire(ctx), context.DeadlineExceeded)

	h.release()
	assert.NoError(t, h.acquire(context.Background()))
	h.release()
}

func TestLiveSession(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	c, err := live.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws")
	require.NoError(t, err)
	defer c.Close()

	// the session starts by sending every canvas and a status
	frames := map[byte]bool{}
	var status *live.Status
	for len(frames) < 3 || status == nil {
		ev, err := c.Next(ctx)
		require.NoError(t, err)
		if ev.Status != nil {
			status = ev.Status
			continue
		}
		_, err = png.Decode(bytes.NewReader(ev.PNG))
		require.NoError(t, err)
		frames[ev.Canvas] = true
	}
	assert.Equal(t, revolving.DefaultParams.N, status.N)

	require.NoError(t, c.SetParams(ctx, revolving.Params{Alpha: revolving.C(0.5, 0.5), N: 3}))
	for {
		ev, err := c.Next(ctx)
		require.NoError(t, err)
		if ev.Status == nil || ev.Status.N != 3 || !ev.Status.Done {
			continue
		}
		assert.InDelta(t, 0.5, ev.Status.Alpha.Re, 1e-9)
		assert.InDelta(t, 0.5, ev.Status.Alpha.Im, 1e-9)
		assert.Equal(t, 3, ev.Status.Iteration)
		assert.Equal(t, 8, ev.Status.Points)
		assert.Equal(t, "f2(z) = (0.50+0.50i)e^(i pi/3)z + (0.50+0.50i)", ev.Status.Equations.F2)
		break
	}

	require.NoError(t, c.Send(ctx, live.Message{Type: live.TypeText, Text: "0.3-0.2i"}))
	for {
		ev, err := c.Next(ctx)
		require.NoError(t, err)
		if ev.Status != nil && ev.Status.Text == "0.3 - 0.2i" {
			assert.InDelta(t, -0.2, ev.Status.Alpha.Im, 1e-9)
			break
		}
	}
}
