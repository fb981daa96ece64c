package resumes

import "errors"

// Upload problems reported to the client as 400s.
var (
	ErrNoFile        = errors.New("No file uploaded")
	ErrEmptyFilename = errors.New("Empty filename")
)
