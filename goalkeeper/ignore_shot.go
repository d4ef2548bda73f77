package goalkeeper

import (
	"github.com/lixenwraith/super-goalie/engine/fsm"
)

// ignoreShotState lets an off-target shot pass, reusing Idle's entry and exit
type ignoreShotState struct {
	fsm.BaseState[*Keeper]
}

func (s *ignoreShotState) Name() string { return "IgnoreShot" }

func (s *ignoreShotState) Enter(k *Keeper) {
	s.Machine().GetState(StateIdle).Enter(k)
}

func (s *ignoreShotState) Exit(k *Keeper) {
	s.Machine().GetState(StateIdle).Exit(k)
}
