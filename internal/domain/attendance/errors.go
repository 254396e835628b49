package attendance

import "errors"

var (
	ErrFingerNotRecognized = errors.New("no employee matches this finger id")
	ErrAlreadyRecorded     = errors.New("attendance already recorded for today")
)
