package web

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Width = 96
	cfg.Height = 64
	cfg.MaxIter = 30
	return cfg
}

func dial(t *testing.T, ctx context.Context) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(Handler(testConfig(), nil, nil))
	t.Cleanup(srv.Close)

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.CloseNow() })
	return c
}

// readFrame reads binary tiles until the view message that ends the frame.
func readFrame(t *testing.T, ctx context.Context, c *websocket.Conn) (tiles int, view viewMessage) {
	t.Helper()
	for {
		typ, data, err := c.Read(ctx)
		require.NoError(t, err)
		if typ == websocket.MessageText {
			require.NoError(t, json.Unmarshal(data, &view))
			return tiles, view
		}

		require.Greater(t, len(data), tileHeaderLen)
		x := binary.BigEndian.Uint32(data[0:])
		y := binary.BigEndian.Uint32(data[4:])
		img, err := png.Decode(bytes.NewReader(data[tileHeaderLen:]))
		require.NoError(t, err)
		b := img.Bounds()
		assert.LessOrEqual(t, int(x)+b.Dx(), 96)
		assert.LessOrEqual(t, int(y)+b.Dy(), 64)
		tiles++
	}
}

func TestSession(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := dial(t, ctx)

	tiles, view := readFrame(t, ctx, c)
	assert.Equal(t, 2, tiles)
	assert.Equal(t, 2, view.Tiles)
	assert.Equal(t, "view", view.Type)
	assert.Equal(t, 96, view.Width)
	assert.Equal(t, 64, view.Height)
	assert.Equal(t, rect{X: 39, Y: 23, W: 19, H: 19}, view.Selection)
	assert.Equal(t, mandel.DefaultRegion.Xmin, view.Region.Xmin)
	assert.Equal(t, 30, view.MaxIter)

	require.NoError(t, wsjson.Write(ctx, c, inMessage{Type: "pointer", X: 10, Y: 10}))
	tiles, view = readFrame(t, ctx, c)
	assert.Zero(t, tiles, "moving the selection does not resend pixels")
	assert.Equal(t, rect{X: 1, Y: 1, W: 19, H: 19}, view.Selection)

	require.NoError(t, wsjson.Write(ctx, c, inMessage{Type: "key", Key: "right"}))
	tiles, view = readFrame(t, ctx, c)
	assert.Equal(t, 2, tiles)
	assert.InDelta(t, -2+0.247, view.Region.Xmin, 1e-12)
	assert.InDelta(t, 0.47+0.247, view.Region.Xmax, 1e-12)

	require.NoError(t, wsjson.Write(ctx, c, inMessage{Type: "quit"}))
	_, _, err := c.Read(ctx)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func TestSession_UnknownInputIgnored(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := dial(t, ctx)
	readFrame(t, ctx, c)

	require.NoError(t, wsjson.Write(ctx, c, inMessage{Type: "resize"}))
	require.NoError(t, wsjson.Write(ctx, c, inMessage{Type: "key", Key: "f12"}))
	tiles, view := readFrame(t, ctx, c)
	assert.Zero(t, tiles)
	assert.Equal(t, mandel.DefaultRegion.Xmin, view.Region.Xmin)

	require.NoError(t, c.Close(websocket.StatusNormalClosure, ""))
}

func TestHandler_ServesPage(t *testing.T) {
	srv := httptest.NewServer(Handler(testConfig(), nil, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<canvas")
}

func TestEncodeTile_WideOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(65536, 70000, 65536+16, 70000+8))
	img.Set(65536, 70000, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, encodeTile(&buf, img, img.Bounds()))

	data := buf.Bytes()
	assert.Equal(t, uint32(65536), binary.BigEndian.Uint32(data[0:]))
	assert.Equal(t, uint32(70000), binary.BigEndian.Uint32(data[4:]))
	tile, err := png.Decode(bytes.NewReader(data[tileHeaderLen:]))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(16, 8), tile.Bounds().Size())
	r, _, _, _ := tile.At(tile.Bounds().Min.X, tile.Bounds().Min.Y).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestInMessageEvent(t *testing.T) {
	tests := []struct {
		msg  inMessage
		want mandel.Event
		ok   bool
	}{
		{inMessage{Type: "quit"}, mandel.QuitEvent(), true},
		{inMessage{Type: "pointer", X: 3, Y: 4}, mandel.PointerMoved(3, 4), true},
		{inMessage{Type: "key", Key: "confirm"}, mandel.KeyPressed(mandel.KeyConfirm), true},
		{inMessage{Type: "key", Key: "3"}, mandel.KeyPressed(mandel.KeyLandmark3), true},
		{inMessage{Type: "wheel"}, mandel.Event{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.msg.event()
		assert.Equal(t, tt.ok, ok, tt.msg.Type)
		assert.Equal(t, tt.want, got, tt.msg.Type)
	}
}
