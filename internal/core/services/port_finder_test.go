package services

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailablePort_SkipsBoundPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	got, err := FindAvailablePort(port, port+20)

	require.NoError(t, err)
	assert.NotEqual(t, port, got)
	assert.Greater(t, got, port)
}

func TestFindAvailablePort_EmptyRange(t *testing.T) {
	_, err := FindAvailablePort(10, 9)
	assert.ErrorContains(t, err, "no available port")
}
