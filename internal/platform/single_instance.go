package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer window already holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceLock keeps a single timer per user session by holding a
// loopback port derived from the application name.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock binds the port for appName or reports
// ErrAlreadyRunning when another process holds it.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := LockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock. Calling it on a nil or released lock is a no-op.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// LockAddress returns the loopback address used for appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(maxLockPort - minLockPort + 1)
	return fmt.Sprintf("127.0.0.1:%d", minLockPort+int(hash.Sum32()%span))
}
