package generate

import "errors"

var (
	// ErrJobNotFound means no folder exists for the requested slug.
	ErrJobNotFound = errors.New("job folder not found")
	// ErrResumeNotFound means resume.json has not been uploaded yet.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrJobDataNotFound means the job folder exists but holds no job.json.
	ErrJobDataNotFound = errors.New("job data not found")
)
