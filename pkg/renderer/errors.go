package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrCameraNotFound        = errors.New("renderer: camera not found")
	ErrObjectNotFound        = errors.New("renderer: object not found")
	ErrDuplicateName         = errors.New("renderer: name already registered")
	ErrDegenerateOrientation = errors.New("renderer: degenerate camera orientation")
	ErrInvalidCamera         = errors.New("renderer: invalid camera configuration")
	ErrInvalidObject         = errors.New("renderer: invalid object")
	ErrInvalidRenderConfig   = errors.New("renderer: invalid render configuration")
	ErrRenderFailed          = errors.New("renderer: render failed")
)

// NotFoundError reports a lookup of an unregistered camera or object name.
// It unwraps to ErrCameraNotFound or ErrObjectNotFound.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func cameraNotFound(name string) error {
	return &NotFoundError{Name: name, Err: ErrCameraNotFound}
}

func objectNotFound(name string) error {
	return &NotFoundError{Name: name, Err: ErrObjectNotFound}
}
