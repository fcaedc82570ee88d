package commandmanager

import (
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// RealSSHDialer dials over the network with x/crypto/ssh.
type RealSSHDialer struct{}

func (RealSSHDialer) Dial(network, addr string, config *ssh.ClientConfig, timeout time.Duration) (*ssh.Client, error) {
	conn, err := net.DialTimeout(network, addr, timeout)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
