package interfaces

// Game — поверхность игровой логики, видимая состояниям и UI.
type Game interface {
	StartGame()
	Restart() error
	IsEnded() bool
	SetPaused(paused bool)
	IsPaused() bool
}
