package env

import "errors"

var (
	// ErrConfiguration reports an invalid construction parameter.
	ErrConfiguration = errors.New("env: invalid configuration")
	// ErrInvalidAction reports an action outside {0, 1, 2, 3}.
	ErrInvalidAction = errors.New("env: invalid action")
	// ErrNotReset reports use of the environment before the first Reset.
	ErrNotReset = errors.New("env: reset has not been called")
	// ErrEpisodeDone reports a Step after the episode ended.
	ErrEpisodeDone = errors.New("env: episode is done, call reset")
)
