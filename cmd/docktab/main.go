package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docktab/internal/command"
	"docktab/internal/config"
	"docktab/internal/runner"
	"docktab/internal/ui"
)

func main() {
	cfg := config.Load()
	run := runner.NewCLIRunner(cfg.DockerBinary)

	// 启动前探测 docker 是否可用。失败不退出：
	// 界面照常启动并显示提示，用户可在 docker 恢复后刷新。
	startupErr := probeDocker(run)

	app := ui.NewApp(cfg, run, startupErr)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}

// probeDocker 执行 docker version 检查 CLI 与守护进程是否就绪
func probeDocker(run runner.Runner) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := run.Run(ctx, command.BuiltCommand{Args: []string{"version"}})
	return err
}
