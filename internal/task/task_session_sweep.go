package task

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"go.uber.org/zap"
)

// SessionSweepTask 回收闲置的页面会话
type SessionSweepTask struct {
	app  *app.App
	idle time.Duration
	spec string
}

func init() {
	RegisterWithApp(NewSessionSweepTask)
}

// NewSessionSweepTask 创建会话回收任务，未配置 cron 表达式时禁用
func NewSessionSweepTask(appContainer *app.App) (Task, error) {
	cfg := appContainer.Config()
	if cfg.App.SessionSweepSpec == "" {
		return nil, nil
	}
	return &SessionSweepTask{
		app:  appContainer,
		idle: cfg.GetSessionIdleTime(),
		spec: cfg.App.SessionSweepSpec,
	}, nil
}

func (t *SessionSweepTask) Name() string {
	return "session_sweep"
}

func (t *SessionSweepTask) Spec() string {
	return t.spec
}

func (t *SessionSweepTask) LoopInterval() time.Duration {
	return 0
}

func (t *SessionSweepTask) IsStartupRun() bool {
	return false
}

func (t *SessionSweepTask) Run(ctx context.Context) error {
	removed := t.app.Sessions.Sweep(t.idle)
	t.app.Logger().Info("task log",
		zap.String("task", t.Name()),
		zap.Int(logger.FieldCount, removed),
		zap.Int("remaining", t.app.Sessions.Len()))
	return nil
}
