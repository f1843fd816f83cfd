/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package requester

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sabouaram/hammerload/internal/metrics"
	"github.com/sabouaram/hammerload/internal/params"
)

// wsRequester opens one connection per worker during Initialize. A
// background reader goroutine credits bytes_received for every frame
// without blocking Request; Request sends one text frame under a mutex,
// since a gorilla/websocket connection is not safe for concurrent writers.
type wsRequester struct {
	p    *params.WebSocketParams
	sink *metrics.Sink

	conn *websocket.Conn
	wmu  sync.Mutex

	readerDone chan struct{}
}

// NewWebSocket builds a WebSocket Requester factory.
func NewWebSocket() Factory {
	return func(p params.Params, sink *metrics.Sink) (Requester, error) {
		wp, ok := p.(*params.WebSocketParams)
		if !ok {
			return nil, WrapError(KindInternalError, nil)
		}

		return &wsRequester{p: wp, sink: sink}, nil
	}
}

func (r *wsRequester) Initialize(ctx context.Context) error {
	if r.conn != nil {
		return nil
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, r.p.URL, nil)
	if err != nil {
		return WrapError(KindConnectionError, err)
	}

	r.conn = conn
	r.readerDone = make(chan struct{})
	go r.readLoop()

	return nil
}

// readLoop credits bytes_received for every inbound frame until the
// connection closes. It never correlates a frame to a specific Request call.
func (r *wsRequester) readLoop() {
	defer close(r.readerDone)

	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			return
		}
		r.sink.AddBytesReceived(uint64(len(data)))
	}
}

func (r *wsRequester) Request(_ context.Context) error {
	start := time.Now()

	r.wmu.Lock()
	err := r.conn.WriteMessage(websocket.TextMessage, []byte(r.p.Data))
	r.wmu.Unlock()

	r.sink.RecordLatency(time.Since(start))

	if err != nil {
		return WrapError(KindNetwork, err)
	}

	r.sink.AddBytesSent(uint64(len(r.p.Data)))
	return nil
}

func (r *wsRequester) Close() error {
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	<-r.readerDone
	return err
}
