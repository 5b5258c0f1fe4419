package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// 输出面板样式
var (
	surfaceTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Bold(true)

	surfaceLineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	surfaceHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)

// surfaceContent 一个命名面板的内容
type surfaceContent struct {
	name  string
	lines []string
}

// SurfaceViewer 命名输出面板。每个操作+目标组合（如 "diff abc123"）
// 对应一个面板：重复执行同一操作复用该面板并替换内容，不会无限新开。
type SurfaceViewer struct {
	surfaces map[string]*surfaceContent
	current  string // 当前显示的面板名称
	visible  bool

	width   int
	height  int
	scrollY int
}

// NewSurfaceViewer 创建面板查看器
func NewSurfaceViewer() *SurfaceViewer {
	return &SurfaceViewer{
		surfaces: make(map[string]*surfaceContent),
	}
}

// Show 显示面板并替换其内容。同名面板已存在时直接覆盖。
func (v *SurfaceViewer) Show(name, content string) {
	v.surfaces[name] = &surfaceContent{
		name:  name,
		lines: strings.Split(strings.TrimRight(content, "\n"), "\n"),
	}
	v.current = name
	v.visible = true
	v.scrollY = 0
}

// Append 向面板追加流式输出。面板不存在时先创建，
// 追加时自动跟随到底部。
func (v *SurfaceViewer) Append(name, chunk string) {
	s, ok := v.surfaces[name]
	if !ok {
		s = &surfaceContent{name: name}
		v.surfaces[name] = s
	}

	chunk = strings.TrimRight(chunk, "\n")
	if chunk != "" {
		s.lines = append(s.lines, strings.Split(chunk, "\n")...)
	}

	// 仅当前面板跟随滚动
	if v.current == name && v.visible {
		v.scrollY = v.maxScroll()
	}
}

// Open 打开已有面板（用于流式面板的初始显示）
func (v *SurfaceViewer) Open(name string) {
	if _, ok := v.surfaces[name]; !ok {
		v.surfaces[name] = &surfaceContent{name: name}
	}
	v.current = name
	v.visible = true
	v.scrollY = 0
}

// Has 检查面板是否存在
func (v *SurfaceViewer) Has(name string) bool {
	_, ok := v.surfaces[name]
	return ok
}

// Current 当前面板名称，未显示时为空串
func (v *SurfaceViewer) Current() string {
	if !v.visible {
		return ""
	}
	return v.current
}

// Hide 隐藏查看器，面板内容保留
func (v *SurfaceViewer) Hide() {
	v.visible = false
}

// Drop 移除面板（流式会话终止后清理）
func (v *SurfaceViewer) Drop(name string) {
	delete(v.surfaces, name)
	if v.current == name {
		v.visible = false
	}
}

// IsVisible 检查是否可见
func (v *SurfaceViewer) IsVisible() bool {
	return v.visible
}

// SetSize 设置尺寸
func (v *SurfaceViewer) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// visibleLines 可见行数（减去标题与底部提示）
func (v *SurfaceViewer) visibleLines() int {
	n := v.height - 5
	if n < 1 {
		n = 1
	}
	return n
}

// maxScroll 最大滚动偏移
func (v *SurfaceViewer) maxScroll() int {
	s, ok := v.surfaces[v.current]
	if !ok {
		return 0
	}
	m := len(s.lines) - v.visibleLines()
	if m < 0 {
		m = 0
	}
	return m
}

// Update 处理按键，返回事件是否已被处理
func (v *SurfaceViewer) Update(msg tea.KeyMsg) bool {
	if !v.visible {
		return false
	}

	switch msg.String() {
	case "esc", "q":
		v.Hide()
		return true
	case "j", "down":
		if v.scrollY < v.maxScroll() {
			v.scrollY++
		}
		return true
	case "k", "up":
		if v.scrollY > 0 {
			v.scrollY--
		}
		return true
	case "g":
		v.scrollY = 0
		return true
	case "G":
		v.scrollY = v.maxScroll()
		return true
	case "ctrl+d", "pgdown":
		v.scrollY += 10
		if v.scrollY > v.maxScroll() {
			v.scrollY = v.maxScroll()
		}
		return true
	case "ctrl+u", "pgup":
		v.scrollY -= 10
		if v.scrollY < 0 {
			v.scrollY = 0
		}
		return true
	}

	// 拦截其他按键，防止穿透到列表
	return true
}

// View 渲染当前面板
func (v *SurfaceViewer) View() string {
	if !v.visible {
		return ""
	}

	s, ok := v.surfaces[v.current]
	if !ok {
		return ""
	}

	lineWidth := v.width - 6
	if lineWidth < 40 {
		lineWidth = 40
	}

	var b strings.Builder
	b.WriteString("\n  " + surfaceTitleStyle.Render("▶ "+s.name) + "\n")
	b.WriteString("  " + surfaceLineStyle.Render(strings.Repeat("─", lineWidth)) + "\n")

	visible := v.visibleLines()
	visibleWidth := v.width - 8
	if visibleWidth < 30 {
		visibleWidth = 30
	}

	for i := 0; i < visible && i+v.scrollY < len(s.lines); i++ {
		line := s.lines[i+v.scrollY]
		if len(line) > visibleWidth {
			line = line[:visibleWidth-3] + "..."
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("  " + surfaceLineStyle.Render(strings.Repeat("─", lineWidth)) + "\n")

	scrollInfo := ""
	if max := v.maxScroll(); max > 0 {
		scrollInfo = "  " + surfaceHintStyle.Render(strconv.Itoa(v.scrollY*100/max)+"%")
	}
	b.WriteString("  " + surfaceHintStyle.Render("j/k=上下  g/G=首尾  ESC/q=关闭") + scrollInfo + "\n")

	return b.String()
}
