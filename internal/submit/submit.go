// Package submit holds the strategies used by the executors to hand a Job to their workers.
package submit

import (
	"context"
	"errors"
	"log"
)

var (
	ErrQueueFull = errors.New("task queue is full")
)

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

// Job is a function waiting to be run by an executor.  Ctx bounds only how long submission may block.
type Job struct {
	Ctx context.Context
	Run func()
}

type SubmitFunction func(jobChan chan<- Job, j Job) error

func GetSubmitFunction(s FullQueueStrategy) SubmitFunction {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy
	case ErrorWhenFull:
		return errorWhenFullStrategy
	default:
		log.Panicf("invalid submit strategy value %d", s)
	}
	return blockWhenFullStrategy
}

func blockWhenFullStrategy(jobChan chan<- Job, j Job) error {
	select {
	case jobChan <- j:
		return nil
	case <-j.Ctx.Done():
		return context.Canceled
	}
}

func errorWhenFullStrategy(jobChan chan<- Job, j Job) error {
	select {
	case jobChan <- j:
		return nil
	default:
		return ErrQueueFull
	}
}
