package helpers

type LoopResult int

const (
	LoopContinue LoopResult = iota
	LoopBreak
)

func AsyncSend[T any](c *chan T, t T) {
	select {
	case *c <- t:
	default:
	}
}

type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
