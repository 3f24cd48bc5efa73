package errors

import "fmt"

type TargetConfigError struct {
	Index  int
	Reason string
}

func (err TargetConfigError) Error() string {
	return fmt.Sprintf("bad target %d: %s", err.Index, err.Reason)
}

type VersionError struct {
	Component string
	Got       string
	Want      string
}

func (err VersionError) Error() string {
	if len(err.Component) == 0 {
		err.Component = "UNKNOWN"
	}

	return fmt.Sprintf("unable to use %s: received version %q - require %s", err.Component, err.Got, err.Want)
}

type BridgeError struct {
	Cmd   string
	Reply string
}

func (err BridgeError) Error() string {
	return fmt.Sprintf("bridge rejected %s: %s", err.Cmd, err.Reply)
}
