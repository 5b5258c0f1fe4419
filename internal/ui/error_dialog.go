package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docktab/internal/runner"
)

// ErrorDialog 错误弹窗组件
type ErrorDialog struct {
	visible bool
	title   string
	lines   []string
	width   int
}

// 错误弹窗样式
var (
	errorDialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2)

	errorDialogTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	errorDialogMsgStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	errorDialogHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)

// NewErrorDialog 创建错误弹窗
func NewErrorDialog() *ErrorDialog {
	return &ErrorDialog{width: 80}
}

// ShowError 显示单条错误
func (d *ErrorDialog) ShowError(message string) {
	d.visible = true
	d.title = "❌ 操作失败"
	d.lines = []string{message}
}

// ShowBatchErrors 显示批量操作的失败汇总，逐目标一行。
// 错误消息即命令的 stderr 原文。
func (d *ErrorDialog) ShowBatchErrors(action string, failed []runner.TargetResult) {
	if len(failed) == 0 {
		return
	}
	d.visible = true
	d.title = fmt.Sprintf("❌ %s: %d 个目标失败", action, len(failed))
	d.lines = d.lines[:0]
	for _, f := range failed {
		d.lines = append(d.lines, fmt.Sprintf("%s: %v", f.Target, f.Err))
	}
}

// Hide 隐藏错误弹窗
func (d *ErrorDialog) Hide() {
	d.visible = false
	d.title = ""
	d.lines = nil
}

// IsVisible 是否可见
func (d *ErrorDialog) IsVisible() bool {
	return d.visible
}

// SetWidth 设置宽度
func (d *ErrorDialog) SetWidth(width int) {
	d.width = width
}

// Update 处理输入，返回事件是否已被处理
func (d *ErrorDialog) Update(msg tea.Msg) bool {
	if !d.visible {
		return false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter":
			d.Hide()
			return true
		}
		// 拦截其他按键，防止穿透
		return true
	}

	return false
}

// View 渲染错误弹窗
func (d *ErrorDialog) View() string {
	if !d.visible {
		return ""
	}

	boxWidth := d.width - 10
	if boxWidth < 50 {
		boxWidth = 50
	}
	if boxWidth > 90 {
		boxWidth = 90
	}
	contentWidth := boxWidth - 6

	var contentParts []string
	contentParts = append(contentParts, errorDialogTitleStyle.Render(d.title), "")

	for _, line := range d.lines {
		// 长消息按宽度折行
		for len(line) > contentWidth {
			contentParts = append(contentParts, errorDialogMsgStyle.Render(line[:contentWidth]))
			line = line[contentWidth:]
		}
		if line != "" {
			contentParts = append(contentParts, errorDialogMsgStyle.Render(line))
		}
	}

	contentParts = append(contentParts, "", errorDialogHintStyle.Render("[Esc/Enter] 关闭"))

	content := lipgloss.JoinVertical(lipgloss.Left, contentParts...)
	return errorDialogStyle.Width(boxWidth).Render(content)
}

// Overlay 将错误弹窗叠加到基础内容上（居中显示）
func (d *ErrorDialog) Overlay(baseContent string) string {
	if !d.visible {
		return baseContent
	}

	lines := strings.Split(baseContent, "\n")
	dialogLines := strings.Split(d.View(), "\n")

	insertLine := 0
	if len(lines) > len(dialogLines) {
		insertLine = (len(lines) - len(dialogLines)) / 2
	}

	boxWidth := d.width - 10
	if boxWidth < 50 {
		boxWidth = 50
	}
	if boxWidth > 90 {
		boxWidth = 90
	}
	leftPadding := 0
	if d.width > boxWidth+4 {
		leftPadding = (d.width - boxWidth - 4) / 2
	}

	var result strings.Builder
	for i := 0; i < len(lines); i++ {
		dialogIdx := i - insertLine
		if dialogIdx >= 0 && dialogIdx < len(dialogLines) {
			result.WriteString(strings.Repeat(" ", leftPadding))
			result.WriteString(dialogLines[dialogIdx])
		} else {
			result.WriteString(lines[i])
		}
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}
