package mode_selection

import "sensocket/domain/mode"

// AppMode resolves which socket client to run.
type AppMode interface {
	Mode() (mode.Mode, error)
}
