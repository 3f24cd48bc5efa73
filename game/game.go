package game

// Ticks per whole time unit. At the 100ms drive interval a unit is one second.
const TicksPerUnit = 10

// Game handles the bookkeeping common to every mode, like the timer.
type Game struct {
	sink        Sink
	score       int
	time        int
	timeCounter int
}

func (g *Game) Start(limit int) {
	g.time = limit
	g.score = 0
	g.timeCounter = 0
	g.emit(MsgLimit, limit)
	g.emit(MsgScore, g.score)
	g.emit(MsgTime, g.time)
}

// Tick advances the sub-unit counter and reports whether time remains.
func (g *Game) Tick() bool {
	g.timeCounter++
	if g.timeCounter >= TicksPerUnit {
		g.timeCounter = 0
		if g.time > 0 {
			g.time--
		}
		g.emit(MsgTime, g.time)
	}

	return g.time > 0
}

// AddScore applies a score change, reporting only when something changed.
func (g *Game) AddScore(change int) {
	if change != 0 {
		g.score += change
		g.emit(MsgScore, g.score)
	}
}

func (g *Game) Stop(rack *Rack) {
	g.emit(MsgScore, g.score)
	rack.Park()
}

func (g *Game) abandon(rack *Rack) {
	g.Stop(rack)
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Time() int {
	return g.time
}

func (g *Game) emit(kind byte, value int) {
	if g.sink != nil {
		g.sink.Emit(Message{Kind: kind, Value: value})
	}
}
