// Package scheduler 提供定时任务调度
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// 单次任务执行的超时上限
const taskTimeout = 5 * time.Minute

// Task 周期任务
type Task struct {
	Name     string
	Interval time.Duration
	Handler  func(ctx context.Context) error
}

// Scheduler 周期任务调度器，每个任务一个 goroutine
type Scheduler struct {
	tasks  []*Task
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler 创建调度器
func NewScheduler(logger *zap.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddTask 注册任务，需在 Start 之前调用
func (s *Scheduler) AddTask(name string, interval time.Duration, handler func(ctx context.Context) error) {
	s.tasks = append(s.tasks, &Task{Name: name, Interval: interval, Handler: handler})
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	s.logger.Info("scheduler starting", zap.Int("tasks", len(s.tasks)))
	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.run(task)
	}
}

// Stop 停止调度并等待在途任务结束
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) run(task *Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	// 启动时先跑一轮，避免等满一个周期才有数据
	s.execute(task)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(task)
		}
	}
}

func (s *Scheduler) execute(task *Task) {
	ctx, cancel := context.WithTimeout(s.ctx, taskTimeout)
	defer cancel()

	start := time.Now()
	if err := task.Handler(ctx); err != nil {
		s.logger.Error("task failed", zap.String("task", task.Name), zap.Error(err))
		return
	}
	s.logger.Debug("task completed",
		zap.String("task", task.Name),
		zap.Duration("elapsed", time.Since(start)),
	)
}
