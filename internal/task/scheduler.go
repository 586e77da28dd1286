package task

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	LoopInterval() time.Duration   // 执行间隔
	IsStartupRun() bool            // 是否立即执行一次
}

// CronTask is a Task driven by a cron expression instead of a fixed interval.
// An empty Spec falls back to LoopInterval.
type CronTask interface {
	Task
	Spec() string
}

// Scheduler 任务调度器
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
	cron   *cron.Cron
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
		cron:   cron.New(),
	}
}

// AddTask 添加任务
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Tasks 已添加的任务
func (s *Scheduler) Tasks() []Task {
	return append([]Task{}, s.tasks...)
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting ", zap.Int("count", len(s.tasks)))

	cronUsed := false
	for _, task := range s.tasks {
		if s.startTask(task) {
			cronUsed = true
		}
	}

	if cronUsed {
		s.cron.Start()
		s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
			defer done()
			<-closeSignal
			<-s.cron.Stop().Done()
			s.logger.Info("cron tasks stopped")
		})
	}
}

// runOnce 执行一次任务，panic 会被记录而不会终止调度
func (s *Scheduler) runOnce(task Task, mode string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.String("mode", mode),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	s.logger.Info("task running", zap.String("name", task.Name()), zap.String("mode", mode))
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.String("mode", mode),
			zap.Error(err))
	}
}

// startTask 启动单个任务，返回是否注册到了 cron
func (s *Scheduler) startTask(task Task) bool {
	// 如果任务需要立即执行
	if task.IsStartupRun() {
		go s.runOnce(task, "startupRun")
	}

	if ct, ok := task.(CronTask); ok && ct.Spec() != "" {
		if _, err := s.cron.AddFunc(ct.Spec(), func() { s.runOnce(task, "cronRun") }); err != nil {
			s.logger.Error("task cron spec invalid",
				zap.String("name", task.Name()),
				zap.String("spec", ct.Spec()),
				zap.Error(err))
			return false
		}
		return true
	}

	if task.LoopInterval() <= 0 {
		return false
	}

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		ticker := time.NewTicker(task.LoopInterval())
		defer ticker.Stop()

		// 定时执行
		for {
			select {
			case <-ticker.C:
				s.runOnce(task, "loopRun")
			case <-closeSignal:
				s.logger.Info("task stopped", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				return
			}
		}
	})
	return false
}
