package app

// commands maps ':' command names to their effect.
var commands = map[string]func(*App){
	"q":    (*App).requestQuit,
	"quit": (*App).requestQuit,
}

// executeCommand runs the command named by the whole buffer. Unknown
// commands do nothing.
func (a *App) executeCommand(name string) {
	if run, ok := commands[name]; ok {
		run(a)
	}
}

func (a *App) requestQuit() {
	a.quit = true
}

// IsCommand reports whether name is a recognised command.
func IsCommand(name string) bool {
	_, ok := commands[name]
	return ok
}
