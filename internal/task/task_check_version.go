package task

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/haierkeys/notes-app-service/internal/app"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"

	"github.com/bytedance/sonic"
	"golang.org/x/mod/semver"
)

// ShieldsJSON shields.io 徽章接口的响应
type ShieldsJSON struct {
	Message string `json:"message"`
}

type CheckVersionTask struct {
	app        *app.App
	url        string
	interval   time.Duration
	httpClient *http.Client
}

func init() {
	RegisterWithApp(NewCheckVersionTask)
}

// NewCheckVersionTask 创建版本检查任务，未配置查询地址时禁用
func NewCheckVersionTask(appContainer *app.App) (Task, error) {
	cfg := appContainer.Config()
	if cfg.App.VersionCheckURL == "" {
		return nil, nil
	}
	return &CheckVersionTask{
		app:        appContainer,
		url:        cfg.App.VersionCheckURL,
		interval:   cfg.GetVersionCheckInterval(),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (t *CheckVersionTask) Name() string {
	return "check_version"
}

func (t *CheckVersionTask) Run(ctx context.Context) error {
	latest, err := t.fetchVersion(ctx)
	if err != nil {
		return err
	}

	current := t.app.Version().Version
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}
	if !semver.IsValid(latest) {
		return fmt.Errorf("check version: invalid version %q", latest)
	}

	// 更新 App 中的版本信息
	t.app.SetCheckVersionInfo(pkgapp.CheckVersionInfo{
		VersionNewName: latest,
		VersionIsNew:   semver.Compare(latest, current) > 0,
	})

	return nil
}

func (t *CheckVersionTask) fetchVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return "", err
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("check version: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var sj ShieldsJSON
	if err := sonic.Unmarshal(body, &sj); err != nil {
		return "", err
	}

	return strings.TrimSpace(sj.Message), nil
}

func (t *CheckVersionTask) LoopInterval() time.Duration {
	return t.interval
}

func (t *CheckVersionTask) IsStartupRun() bool {
	return true
}
