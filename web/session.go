package web

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/app"
	"github.com/marben/mandelzoom/config"
	"github.com/marben/mandelzoom/render"
)

const readLimit = 4096

// tileHeaderLen prefixes every binary message: tile origin x, y as
// big-endian uint32.
const tileHeaderLen = 8

// inMessage is what the page sends.
type inMessage struct {
	Type string `json:"type"` // "key", "pointer" or "quit"
	Key  string `json:"key,omitempty"`
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
}

type rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type region struct {
	Xmin float64 `json:"x_min"`
	Xmax float64 `json:"x_max"`
	Ymin float64 `json:"y_min"`
	Ymax float64 `json:"y_max"`
}

// viewMessage follows the tiles of a frame, and is sent alone when only the
// selection moved.
type viewMessage struct {
	Type      string `json:"type"` // "view"
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Tiles     int    `json:"tiles"` // tiles sent just before this message
	Selection rect   `json:"selection"`
	Region    region `json:"region"`
	MaxIter   int    `json:"max_iter"`
	Caption   string `json:"caption"`
}

func (m inMessage) event() (mandel.Event, bool) {
	switch m.Type {
	case "quit":
		return mandel.QuitEvent(), true
	case "pointer":
		return mandel.PointerMoved(m.X, m.Y), true
	case "key":
		return mandel.KeyPressed(mandel.ParseKey(m.Key)), true
	}
	return mandel.Event{}, false
}

// serveSession runs one explorer over c. The reader goroutine only queues
// events; the session goroutine is the only one touching the view.
func serveSession(ctx context.Context, c *websocket.Conn, cfg config.Config) error {
	s, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	queue := app.NewQueue()

	g, ctx := errgroup.WithContext(ctx)
	p := &presenter{ctx: ctx, conn: c, tiles: s.Renderer.Tiles()}
	sessionDone := make(chan struct{})

	g.Go(func() error {
		for {
			var m inMessage
			if err := wsjson.Read(ctx, c, &m); err != nil {
				select {
				case <-sessionDone:
					return nil
				default:
				}
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					queue.Push(mandel.QuitEvent())
					return nil
				}
				return fmt.Errorf("read: %w", err)
			}
			evt, ok := m.event()
			if !ok {
				mandel.Logger().Warn("dropping unknown message", "type", m.Type)
				continue
			}
			queue.Push(evt)
		}
	})
	g.Go(func() error {
		err := s.Run(ctx, queue, p)
		close(sessionDone)
		if err != nil {
			return err
		}
		// Unblocks the reader; the handler's own Close is then a no-op.
		_ = c.Close(websocket.StatusNormalClosure, "")
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// presenter ships fresh frames tile by tile, then a view message.
type presenter struct {
	ctx   context.Context
	conn  *websocket.Conn
	tiles []image.Rectangle
	buf   bytes.Buffer
}

func (p *presenter) Present(f mandel.Frame) error {
	sent := 0
	if f.Fresh {
		for _, t := range p.tiles {
			if err := p.sendTile(f.Image, t); err != nil {
				return fmt.Errorf("tile %s: %w", t, err)
			}
			sent++
		}
	}
	b := f.Image.Bounds()
	return wsjson.Write(p.ctx, p.conn, viewMessage{
		Type:   "view",
		Width:  b.Dx(),
		Height: b.Dy(),
		Tiles:  sent,
		Selection: rect{
			X: f.Selection.Min.X,
			Y: f.Selection.Min.Y,
			W: f.Selection.Dx(),
			H: f.Selection.Dy(),
		},
		Region:  region{Xmin: f.Region.Xmin, Xmax: f.Region.Xmax, Ymin: f.Region.Ymin, Ymax: f.Region.Ymax},
		MaxIter: f.MaxIter,
		Caption: render.Caption(f),
	})
}

func (p *presenter) sendTile(img *image.RGBA, t image.Rectangle) error {
	p.buf.Reset()
	if err := encodeTile(&p.buf, img, t); err != nil {
		return err
	}
	return p.conn.Write(p.ctx, websocket.MessageBinary, p.buf.Bytes())
}

// encodeTile appends the tile header and the PNG of img's t sub-image to buf.
func encodeTile(buf *bytes.Buffer, img *image.RGBA, t image.Rectangle) error {
	var hdr [tileHeaderLen]byte
	binary.BigEndian.PutUint32(hdr[0:], uint32(t.Min.X))
	binary.BigEndian.PutUint32(hdr[4:], uint32(t.Min.Y))
	buf.Write(hdr[:])

	sub, ok := img.SubImage(t).(*image.RGBA)
	if !ok {
		return errors.New("unexpected sub-image type")
	}
	return png.Encode(buf, sub)
}
