// Package ui 实现基于 bubbletea 的容器表格界面。
// 界面本身不直接接触 docker：所有操作先经 command 构建为命令，
// 再交给 runner 执行，输出由 listing 解析或进入命名面板。
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docktab/internal/config"
	"docktab/internal/runner"
	"docktab/internal/session"
)

// App 应用根模型
type App struct {
	list     *ListView
	sessions *session.Registry

	width  int
	height int

	// docker 探测失败时的提示，列表仍可手动刷新重试
	startupErr error
}

// NewApp 创建应用根模型。startupErr 为启动时 docker 探测的结果，
// 探测失败不阻止界面启动。
func NewApp(cfg *config.Config, run runner.Runner, startupErr error) *App {
	sessions := session.NewRegistry()
	return &App{
		list:       NewListView(cfg, run, sessions),
		sessions:   sessions,
		startupErr: startupErr,
	}
}

// Init 初始化
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update 处理消息
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// 输入栏或弹窗激活时 q 是普通字符，不触发退出
		if a.list.prompt == promptNone && !a.list.viewer.IsVisible() &&
			!a.list.showConfirm && !a.list.errorDialog.IsVisible() &&
			key.Matches(msg, a.list.keys.Quit) {
			a.sessions.CloseAll()
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View 渲染
func (a *App) View() string {
	s := a.list.View()

	if a.startupErr != nil {
		warn := lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Render("⚠ docker 不可用: " + a.startupErr.Error())
		s = "\n  " + warn + "\n" + s
	}

	return s
}
