package resolve

import "errors"

// A NotFoundError reports that no checkpoint exists at a resolved path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "checkpoint is not found at " + e.Path
}

// IsNotFound tells if the error reports a missing checkpoint.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
