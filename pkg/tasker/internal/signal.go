package internal

import (
	"os"
	"os/signal"
	"sync"
)

var m sync.RWMutex

var (
	signalNotify = signal.Notify
	signalStop   = signal.Stop
)

func SignalNotify(c chan<- os.Signal, sig ...os.Signal) {
	m.RLock()
	defer m.RUnlock()
	signalNotify(c, sig...)
}

func SignalStop(c chan<- os.Signal) {
	m.RLock()
	defer m.RUnlock()
	signalStop(c)
}

// StubSignal replaces the process signal hooks until the returned restore func is called.
func StubSignal(notify func(chan<- os.Signal, ...os.Signal), stop func(chan<- os.Signal)) func() {
	m.Lock()
	defer m.Unlock()
	ogNotify, ogStop := signalNotify, signalStop
	signalNotify, signalStop = notify, stop
	return func() {
		m.Lock()
		defer m.Unlock()
		signalNotify, signalStop = ogNotify, ogStop
	}
}
