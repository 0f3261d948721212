package utils

import (
	"fmt"
	"net"
	"time"
)

// PingHostPort checks if a service accepts TCP connections at host:port
func PingHostPort(host, port string, timeout time.Duration) error {
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}

// PingSMTP checks if the SMTP relay is reachable
func PingSMTP(host, port string) error {
	return PingHostPort(host, port, 1500*time.Millisecond)
}
