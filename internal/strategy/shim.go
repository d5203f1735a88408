package strategy

// EngineControl is the engine-facing surface a wrapping layer expects to
// poke at: identity metadata, option and hash sizing setters, and the
// usual lifecycle prods. Strategies don't wrap a real engine, so
// ShimEngine satisfies it on their behalf.
type EngineControl interface {
	Id() map[string]string
	SetOption(name string, value any)
	SetHashSize(megabytes int)
	NewGame()
	Ponderhit()
	Debug(on bool)
	Stop()
	Quit()
}

// ShimEngine converts every EngineControl call into a single uniform
// Notify on the owning strategy. The default Notify is a no-op, so a
// wrapping layer can fire any hook it likes at any strategy and unknown
// ones degrade gracefully.
type ShimEngine struct {
	owner Strategy
}

var _ EngineControl = (*ShimEngine)(nil)

func NewShimEngine(owner Strategy) *ShimEngine {
	return &ShimEngine{owner: owner}
}

func (e *ShimEngine) Id() map[string]string {
	return map[string]string{"name": e.owner.Name()}
}

func (e *ShimEngine) SetOption(name string, value any) {
	e.owner.Notify("setoption", name, value)
}

func (e *ShimEngine) SetHashSize(megabytes int) {
	e.owner.Notify("sethashsize", megabytes)
}

func (e *ShimEngine) NewGame() {
	e.owner.Notify("newgame")
}

func (e *ShimEngine) Ponderhit() {
	e.owner.Notify("ponderhit")
}

func (e *ShimEngine) Debug(on bool) {
	e.owner.Notify("debug", on)
}

func (e *ShimEngine) Stop() {
	e.owner.Notify("stop")
}

func (e *ShimEngine) Quit() {
	e.owner.Notify("quit")
}
