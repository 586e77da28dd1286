package task

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/pkg/safe_close"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, mutate func(cfg *app.AppConfig)) *app.App {
	t.Helper()
	cfg, err := app.NewDefaultConfig()
	require.NoError(t, err)
	cfg.Storage.SavePath = t.TempDir()
	if mutate != nil {
		mutate(cfg)
	}
	a, err := app.NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })
	return a
}

type countingTask struct {
	name     string
	spec     string
	interval time.Duration
	startup  bool
	runs     atomic.Int32
}

func (c *countingTask) Name() string { return c.name }
func (c *countingTask) Spec() string { return c.spec }
func (c *countingTask) LoopInterval() time.Duration { return c.interval }
func (c *countingTask) IsStartupRun() bool { return c.startup }
func (c *countingTask) Run(ctx context.Context) error {
	c.runs.Add(1)
	return nil
}

func TestScheduler_StartupAndLoop(t *testing.T) {
	sc := safe_close.NewSafeClose()
	s := NewScheduler(zap.NewNop(), sc)

	startup := &countingTask{name: "startup", startup: true}
	loop := &countingTask{name: "loop", interval: 5 * time.Millisecond}
	badSpec := &countingTask{name: "bad", spec: "not a spec"}
	s.AddTask(startup)
	s.AddTask(loop)
	s.AddTask(badSpec)
	s.Start()

	assert.Eventually(t, func() bool {
		return startup.runs.Load() == 1 && loop.runs.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	sc.SendCloseSignal(nil)
	require.NoError(t, sc.WaitClosed())
	assert.Equal(t, int32(0), badSpec.runs.Load())
}

func TestScheduler_CronTask(t *testing.T) {
	sc := safe_close.NewSafeClose()
	s := NewScheduler(zap.NewNop(), sc)

	cronTask := &countingTask{name: "cron", spec: "@every 1s"}
	s.AddTask(cronTask)
	s.Start()

	assert.Eventually(t, func() bool { return cronTask.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	sc.SendCloseSignal(nil)
	require.NoError(t, sc.WaitClosed())
}

func TestManager_RegisterTasks(t *testing.T) {
	a := newTestApp(t, nil)
	m := NewManager(zap.NewNop(), safe_close.NewSafeClose(), a)
	require.NoError(t, m.RegisterTasks())

	names := map[string]bool{}
	for _, task := range m.Scheduler().Tasks() {
		names[task.Name()] = true
	}
	assert.True(t, names["session_sweep"])
	assert.True(t, names["check_version"])
}

func TestTaskFactories_Disabled(t *testing.T) {
	a := newTestApp(t, func(cfg *app.AppConfig) {
		cfg.App.VersionCheckURL = ""
		cfg.App.SessionSweepSpec = ""
	})

	task, err := NewCheckVersionTask(a)
	require.NoError(t, err)
	assert.Nil(t, task)

	task, err = NewSessionSweepTask(a)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestSessionSweepTask_Run(t *testing.T) {
	a := newTestApp(t, nil)
	a.Board(1)
	a.Board(2)

	task := &SessionSweepTask{app: a, idle: -time.Hour, spec: "@every 1m"}
	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 0, a.Sessions.Len())
}

func TestCheckVersionTask_Run(t *testing.T) {
	var body atomic.Value
	body.Store(`{"label":"release","message":"v99.0.0"}`)
	status := atomic.Int32{}
	status.Store(http.StatusOK)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
		_, _ = w.Write([]byte(body.Load().(string)))
	}))
	defer srv.Close()

	a := newTestApp(t, func(cfg *app.AppConfig) { cfg.App.VersionCheckURL = srv.URL })
	task, err := NewCheckVersionTask(a)
	require.NoError(t, err)

	require.NoError(t, task.Run(context.Background()))
	cv := a.CheckVersion()
	assert.True(t, cv.VersionIsNew)
	assert.Equal(t, "99.0.0", cv.VersionNewName)

	body.Store(`{"message":"0.0.1"}`)
	require.NoError(t, task.Run(context.Background()))
	assert.False(t, a.CheckVersion().VersionIsNew)

	body.Store(`{"message":"not-a-version"}`)
	assert.Error(t, task.Run(context.Background()))

	status.Store(http.StatusBadGateway)
	assert.Error(t, task.Run(context.Background()))
}
