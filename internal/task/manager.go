package task

import (
	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger
	app       *app.App
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose, appContainer *app.App) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		logger:    logger,
		app:       appContainer,
	}
}

// RegisterTasks 注册所有任务
// A factory error is logged and skips that task only.
func (m *Manager) RegisterTasks() error {
	for _, factory := range GetFactories() {
		task, err := factory(m.app)
		if err != nil {
			m.logger.Warn("failed to create task", zap.Error(err))
			continue
		}
		if task == nil {
			continue
		}
		m.scheduler.AddTask(task)
	}
	return nil
}

// Scheduler 返回调度器
func (m *Manager) Scheduler() *Scheduler {
	return m.scheduler
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
