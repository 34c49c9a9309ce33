package achievements

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch         = errors.New("achievement count mismatch")
	ErrUnmatchedAchievement = errors.New("achievement missing from one source")
	ErrNoSelection          = errors.New("you did not choose a game")
)

// SizeMismatchError reports how many achievements each source returned.
type SizeMismatchError struct {
	Player int
	Schema int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("player achievements size %d, game achievements size %d", e.Player, e.Schema)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// Side names the source an achievement was found in.
type Side string

const (
	SidePlayer Side = "player"
	SideSchema Side = "schema"
)

// UnmatchedError names an identifier that only one source knows about.
type UnmatchedError struct {
	APIName string
	Side    Side
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("achievement %q only present in %s achievements", e.APIName, e.Side)
}

func (e *UnmatchedError) Is(target error) bool {
	return target == ErrUnmatchedAchievement
}
