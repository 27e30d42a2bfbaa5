package engine

import "errors"

var ErrInvalidIndex = errors.New("invalid index")
var ErrDuplicateTeam = errors.New("duplicate team id")
var ErrAlreadyUsed = errors.New("clue already used")
var ErrNotUsed = errors.New("clue not used")
var ErrNotOpen = errors.New("clue not open")
var ErrInvalidBoard = errors.New("invalid board layout")
var ErrRoundNotComplete = errors.New("round not complete")
var ErrInvalidWager = errors.New("wager out of range")
var ErrWagerNotSet = errors.New("wager not committed")
var ErrWrongStage = errors.New("not allowed in current stage")
var ErrStageNotReady = errors.New("stage gate not satisfied")
var ErrNoOpenClue = errors.New("no clue open")
var ErrWrongTeam = errors.New("team may not act on this clue")
var ErrMatchCompleted = errors.New("match already completed")
var ErrUnsupportedCommand = errors.New("unsupported command")
