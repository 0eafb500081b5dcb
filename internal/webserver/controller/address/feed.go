package address

import (
	"github.com/gofiber/websocket/v2"
)

// Feed streams the address collection to a websocket client. The client
// receives the full ordered snapshot immediately on connect and again on
// every change, from whichever session caused it.
func (a *Controller) Feed() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		snapshots, cancel := a.hub.Subscribe()
		defer cancel()

		if addresses, err := a.repository.List(); err == nil {
			if err := conn.WriteJSON(addresses); err != nil {
				return
			}
		}

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case snapshot, ok := <-snapshots:
				if !ok {
					return
				}
				if err := conn.WriteJSON(snapshot); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}
