package repository

import "fmt"

// Stage names the step of a gateway operation that failed.
type Stage string

const (
	StageConnect Stage = "connect"
	StagePrepare Stage = "prepare"
	StageExecute Stage = "execute"
	StageDecode  Stage = "decode"
)

// StorageError is returned by every failed gateway operation.
type StorageError struct {
	Op    string
	Stage Stage
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s todo_list: %s: %v", e.Op, e.Stage, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, stage Stage, err error) error {
	return &StorageError{Op: op, Stage: stage, Err: err}
}
