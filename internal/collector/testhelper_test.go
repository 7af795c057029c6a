// Package collector implements the CarFlow fan-out/fan-in client.
package collector

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/yndnr/carflow-go/internal/core/domain"
)

// startStubFeed starts a TCP listener that behaves like a feed server:
// on every accept it writes payload (after an optional delay) and
// closes the connection. It serves any number of connections.
func startStubFeed(t *testing.T, payload string, delay time.Duration) domain.FeedAddress {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				if delay > 0 {
					time.Sleep(delay)
				}
				c.Write([]byte(payload))
				c.Close()
			}(conn)
		}
	}()

	return feedAddrOf(t, ln)
}

// startHangingFeed starts a listener that accepts connections and never
// writes or closes them until the test ends.
func startHangingFeed(t *testing.T) domain.FeedAddress {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	var mu sync.Mutex
	var conns []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})

	return feedAddrOf(t, ln)
}

// refusedFeedAddr returns an address with no listener behind it.
func refusedFeedAddr(t *testing.T) domain.FeedAddress {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := feedAddrOf(t, ln)
	ln.Close()
	return addr
}

func feedAddrOf(t *testing.T, ln net.Listener) domain.FeedAddress {
	t.Helper()

	tcpAddr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		t.Fatalf("unexpected listener addr type %T", ln.Addr())
	}
	return domain.FeedAddress{Host: "127.0.0.1", Port: tcpAddr.Port}
}

// recordSet builds an order-insensitive multiset of sighting strings.
func recordSet(records []domain.Sighting) map[string]int {
	set := make(map[string]int, len(records))
	for _, r := range records {
		set[r.String()]++
	}
	return set
}
