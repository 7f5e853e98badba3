package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/runtime/app"
)

// Env is filled in by the root command once the config is loaded. Commands
// read it when they run, never when they are built.
type Env struct {
	App *app.App
	Now func() time.Time
}

func (e *Env) app() (*app.App, error) {
	if e.App == nil {
		return nil, fmt.Errorf("wakestate storage is not open")
	}
	return e.App, nil
}
