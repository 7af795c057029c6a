// Package domain defines the core domain models for CarFlow.
package domain

import (
	"net"
	"strconv"
)

// FeedAddress identifies one feed server to query.
//
// The configured feed list may contain duplicate addresses; each
// occurrence is queried by an independent session.
type FeedAddress struct {
	// Host is the feed hostname or IP address.
	Host string `json:"host"`

	// Port is the feed TCP port.
	Port int `json:"port"`
}

// Addr returns the address in dialable "host:port" form.
func (a FeedAddress) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// String returns the address in "host:port" form.
func (a FeedAddress) String() string {
	return a.Addr()
}

// ParseFeedAddress parses a "host:port" string into a FeedAddress.
// Returns ErrInvalidAddress (CF-ARG-1001) if the string is not a valid
// host/port pair or the port is out of range.
func ParseFeedAddress(s string) (FeedAddress, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return FeedAddress{}, ErrInvalidAddress.WithDetails(s).WithCause(err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return FeedAddress{}, ErrInvalidAddress.WithDetails(s).WithCause(err)
	}
	if port < 1 || port > 65535 {
		return FeedAddress{}, ErrInvalidAddress.WithDetails("port out of range: " + portStr)
	}
	if host == "" {
		return FeedAddress{}, ErrInvalidAddress.WithDetails("empty host in " + s)
	}

	return FeedAddress{Host: host, Port: port}, nil
}

// ParseFeedAddresses parses a list of "host:port" strings, preserving
// order and duplicates. The first invalid entry fails the whole list.
func ParseFeedAddresses(entries []string) ([]FeedAddress, error) {
	addrs := make([]FeedAddress, 0, len(entries))
	for _, entry := range entries {
		addr, err := ParseFeedAddress(entry)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
