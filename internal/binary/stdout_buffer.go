package binary

import (
	"sync"

	. "github.com/eloworld/strategies/internal/helpers"
)

type StdOutBuffer struct {
	lock    sync.Mutex
	buffer  []string
	updated chan bool
	read    int

	noCopy NoCopy
}

func (u *StdOutBuffer) ensure() chan bool {
	if u.updated == nil {
		u.updated = make(chan bool, 1)
	}
	return u.updated
}

func (u *StdOutBuffer) Update(line string) {
	u.lock.Lock()
	u.buffer = append(u.buffer, line)
	updated := u.ensure()
	u.lock.Unlock()

	select {
	case updated <- true:
	default:
	}
}

// Drain feeds every unread line to the callback, stopping early on error.
func (u *StdOutBuffer) Drain(callback func(line string) Error) Error {
	u.lock.Lock()
	pending := u.buffer[u.read:]
	u.read = len(u.buffer)
	u.lock.Unlock()

	var err Error
	for _, line := range pending {
		err = callback(line)
		if !IsNil(err) {
			break
		}
	}
	return err
}

func (u *StdOutBuffer) Wait() chan bool {
	u.lock.Lock()
	defer u.lock.Unlock()
	return u.ensure()
}
