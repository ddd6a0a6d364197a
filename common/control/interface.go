package control

import "syscall"

// Func has the shape of net.Dialer.Control and net.ListenConfig.Control.
type Func = func(network, address string, conn syscall.RawConn) error
