package session

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/wallrun/oerror"
	"github.com/oomph-ac/wallrun/player"
)

// recoverPanic reports a panic of a session goroutine to sentry, tagged with the session side and
// the player, and turns it into an error.
func recoverPanic(p *player.Player, side string, err *error) {
	r := recover()
	if r == nil {
		return
	}

	p.Log().Errorf("%s session panic: %v", side, r)
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("conn_type", side)
		scope.SetTag("player", p.Name())
	})
	hub.Recover(oerror.New("%v", r))
	hub.Flush(time.Second * 5)

	*err = oerror.New("%s session panic: %v", side, r)
}
