package redis

import (
	"fmt"

	"github.com/alicebob/miniredis/v2"
)

// NewEmbedded starts an in-process redis server and returns a client for it.
// Data lives only as long as the process. The returned stop function closes
// the client and the server.
func NewEmbedded() (Client, func(), error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("redis: failed to start embedded server: %w", err)
	}

	client, err := NewClient(server.Addr(), nil)
	if err != nil {
		server.Close()
		return nil, nil, err
	}

	stop := func() {
		_ = client.Close()
		server.Close()
	}

	return client, stop, nil
}
