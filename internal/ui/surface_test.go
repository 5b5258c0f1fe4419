package ui

import (
	"strings"
	"testing"
)

// TestSurfaceViewer_ShowReplaces 测试同名面板复用并替换内容
func TestSurfaceViewer_ShowReplaces(t *testing.T) {
	v := NewSurfaceViewer()
	v.SetSize(80, 24)

	v.Show("diff abc", "A /old")
	v.Show("diff abc", "A /new")

	if len(v.surfaces) != 1 {
		t.Fatalf("Expected 1 surface after reuse, got %d", len(v.surfaces))
	}
	if got := v.View(); !strings.Contains(got, "A /new") || strings.Contains(got, "A /old") {
		t.Error("Expected second Show to replace surface content")
	}
}

// TestSurfaceViewer_SeparateNames 测试不同目标使用不同面板
func TestSurfaceViewer_SeparateNames(t *testing.T) {
	v := NewSurfaceViewer()
	v.SetSize(80, 24)

	v.Show("diff abc", "content-abc")
	v.Show("diff def", "content-def")

	if len(v.surfaces) != 2 {
		t.Fatalf("Expected 2 surfaces, got %d", len(v.surfaces))
	}
	if v.Current() != "diff def" {
		t.Errorf("Expected current surface 'diff def', got %q", v.Current())
	}
}

// TestSurfaceViewer_Append 测试流式追加
func TestSurfaceViewer_Append(t *testing.T) {
	v := NewSurfaceViewer()
	v.SetSize(80, 24)

	v.Open("logs abc")
	v.Append("logs abc", "line one\nline two\n")
	v.Append("logs abc", "line three\n")

	s := v.surfaces["logs abc"]
	if len(s.lines) != 3 {
		t.Fatalf("Expected 3 lines after appends, got %d", len(s.lines))
	}
	if s.lines[2] != "line three" {
		t.Errorf("Expected last line 'line three', got %q", s.lines[2])
	}
}

// TestSurfaceViewer_HideKeepsContent 测试隐藏后内容保留
func TestSurfaceViewer_HideKeepsContent(t *testing.T) {
	v := NewSurfaceViewer()
	v.SetSize(80, 24)

	v.Show("inspect x", "{}")
	v.Hide()

	if v.IsVisible() {
		t.Error("Expected viewer hidden")
	}
	if !v.Has("inspect x") {
		t.Error("Expected surface content kept after hide")
	}

	v.Open("inspect x")
	if got := v.View(); !strings.Contains(got, "{}") {
		t.Error("Expected reopened surface to show kept content")
	}
}

// TestSurfaceViewer_Drop 测试移除面板
func TestSurfaceViewer_Drop(t *testing.T) {
	v := NewSurfaceViewer()
	v.Show("logs x", "data")
	v.Drop("logs x")

	if v.Has("logs x") {
		t.Error("Expected surface removed")
	}
	if v.IsVisible() {
		t.Error("Expected viewer hidden after dropping current surface")
	}
}
