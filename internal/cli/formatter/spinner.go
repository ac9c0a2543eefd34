package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var (
	spinnerFrames   = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinnerInterval = 100 * time.Millisecond
)

// StartSpinner animates message with the elapsed time on out until the
// returned stop function is called. Stop clears the line, waits for the
// last frame and is safe to call more than once. A nil out draws nothing.
func StartSpinner(out io.Writer, message string) func() {
	if out == nil {
		return func() {}
	}

	quit := make(chan struct{})
	finished := make(chan struct{})
	began := time.Now()

	go func() {
		defer close(finished)
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-quit:
				fmt.Fprint(out, "\r\033[K")
				return
			case now := <-tick.C:
				elapsed := now.Sub(began).Truncate(time.Second)
				fmt.Fprintf(out, "\r\033[K  %s %s %s",
					StylePurple.Render(spinnerFrames[frame%len(spinnerFrames)]),
					Dim(message),
					Dim(elapsed.String()))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			<-finished
		})
	}
}
