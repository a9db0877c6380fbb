package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/warp-contracts/txinfo/src/utils/config"
	"github.com/warp-contracts/txinfo/src/utils/logger"

	"github.com/sirupsen/logrus"
)

const defaultStopTimeout = 30 * time.Second

// Lifecycle of a long lived component: subtasks run in goroutines until Stop() is called.
type Task struct {
	Config *config.Config
	Log    *logrus.Entry

	// Closed when Stop() is called
	StopChannel chan struct{}
	stopOnce    sync.Once
	running     sync.WaitGroup

	// Active as long as any subtask runs. Used outside the task.
	CtxRunning    context.Context
	cancelRunning context.CancelFunc

	// Cancelled when Stop() is called. Used inside the task.
	Ctx    context.Context
	cancel context.CancelFunc

	onBeforeStart []func() error
	onStop        []func()
	onAfterStop   []func()
	subtasksFunc  []func() error
	subtasks      []*Task
}

func NewTask(config *config.Config, name string) (self *Task) {
	self = new(Task)
	self.Log = logger.NewSublogger(name)
	self.Config = config
	self.StopChannel = make(chan struct{})

	self.Ctx, self.cancel = context.WithCancel(context.Background())
	self.CtxRunning, self.cancelRunning = context.WithCancel(context.Background())
	return
}

func (self *Task) WithOnBeforeStart(f func() error) *Task {
	self.onBeforeStart = append(self.onBeforeStart, f)
	return self
}

func (self *Task) WithOnStop(f func()) *Task {
	self.onStop = append(self.onStop, f)
	return self
}

func (self *Task) WithOnAfterStop(f func()) *Task {
	self.onAfterStop = append(self.onAfterStop, f)
	return self
}

// Child task is started and stopped together with this one
func (self *Task) WithSubtask(t *Task) *Task {
	self.subtasks = append(self.subtasks, t)
	return self
}

func (self *Task) WithSubtaskFunc(f func() error) *Task {
	self.subtasksFunc = append(self.subtasksFunc, f)
	return self
}

// Calls f right away and then every period, until stopped or f fails
func (self *Task) WithPeriodicSubtaskFunc(period time.Duration, f func() error) *Task {
	return self.WithSubtaskFunc(func() error {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			err := f()
			if err != nil {
				return err
			}

			select {
			case <-self.StopChannel:
				self.Log.Debug("Periodic task stopped")
				return nil
			case <-ticker.C:
			}
		}
	})
}

func (self *Task) run(subtask func() error) {
	self.running.Add(1)
	go func() {
		defer func() {
			self.running.Done()

			if p := recover(); p != nil {
				self.Log.WithError(fmt.Errorf("%v", p)).Error("Panic. Stopping.")
				panic(p)
			}
		}()

		err := subtask()
		if err != nil {
			self.Log.WithError(err).Error("Subtask failed")
		}
	}()
}

func (self *Task) Start() (err error) {
	for _, cb := range self.onBeforeStart {
		err = cb()
		if err != nil {
			return
		}
	}

	for _, subtask := range self.subtasks {
		err = subtask.Start()
		if err != nil {
			return
		}

		// Child counts as running until its own subtasks finish
		self.running.Add(1)
		go func(child *Task) {
			defer self.running.Done()
			<-child.CtxRunning.Done()
		}(subtask)
	}

	for _, subtask := range self.subtasksFunc {
		self.run(subtask)
	}

	go func() {
		self.running.Wait()

		for _, cb := range self.onAfterStop {
			cb()
		}

		self.cancelRunning()
	}()

	return nil
}

func (self *Task) Stop() {
	self.stopOnce.Do(func() {
		self.Log.Info("Stopping...")

		for _, subtask := range self.subtasks {
			subtask.Stop()
		}

		close(self.StopChannel)
		self.cancel()

		for _, cb := range self.onStop {
			cb()
		}
	})
}

// Stops and waits for subtasks to finish, at most Config.StopTimeout
func (self *Task) StopWait() {
	timeout := defaultStopTimeout
	if self.Config != nil && self.Config.StopTimeout > 0 {
		timeout = self.Config.StopTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	self.Stop()

	select {
	case <-ctx.Done():
		self.Log.Error("Timeout reached, failed to stop")
	case <-self.CtxRunning.Done():
		self.Log.Info("Task finished")
	}
}
