package alert

import "github.com/springmovies/webclient/pkg/statemachine"

const (
	stateVisible = statemachine.StringState("visible")
	stateHidden  = statemachine.StringState("hidden")
	stateRemoved = statemachine.StringState("removed")

	eventHide   = statemachine.StringEvent("hide")
	eventRemove = statemachine.StringEvent("remove")
)

// lifecycle is visible -> hidden -> removed. An explicit Remove may skip
// the hidden state.
var lifecycle = statemachine.MustDefine(stateVisible,
	statemachine.WithTransition(stateVisible, stateHidden, eventHide),
	statemachine.WithTransition(stateHidden, stateRemoved, eventRemove),
	statemachine.WithTransition(stateVisible, stateRemoved, eventRemove),
)
