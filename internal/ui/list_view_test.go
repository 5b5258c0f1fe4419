package ui

import (
	"reflect"
	"testing"
	"time"

	"docktab/internal/config"
	"docktab/internal/listing"
	"docktab/internal/session"
)

func newTestView() *ListView {
	cfg := &config.Config{
		DockerBinary:      "docker",
		DefaultShell:      "/bin/sh",
		DefaultSortColumn: "image",
		ShowAll:           true,
		CommandTimeout:    10 * time.Second,
	}
	return NewListView(cfg, nil, session.NewRegistry())
}

// TestToggleMark_PreservesOrder 测试标记顺序与标记先后一致
func TestToggleMark_PreservesOrder(t *testing.T) {
	v := newTestView()

	v.toggleMark("c")
	v.toggleMark("a")
	v.toggleMark("b")

	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(v.marked, want) {
		t.Errorf("Expected marks in mark order %v, got %v", want, v.marked)
	}
}

// TestToggleMark_Unmark 测试再次标记即取消
func TestToggleMark_Unmark(t *testing.T) {
	v := newTestView()

	v.toggleMark("a")
	v.toggleMark("b")
	v.toggleMark("a")

	want := []string{"b"}
	if !reflect.DeepEqual(v.marked, want) {
		t.Errorf("Expected %v after unmark, got %v", want, v.marked)
	}
	if v.isMarked("a") {
		t.Error("Expected 'a' to be unmarked")
	}
}

// TestPruneMarks 测试刷新后剔除消失容器的标记
func TestPruneMarks(t *testing.T) {
	v := newTestView()
	v.toggleMark("gone")
	v.toggleMark("kept")

	v.rows = []listing.Row{{ID: "kept"}}
	v.pruneMarks()

	want := []string{"kept"}
	if !reflect.DeepEqual(v.marked, want) {
		t.Errorf("Expected %v after prune, got %v", want, v.marked)
	}
}

// TestSortRows_ByImage 测试按镜像名排序
func TestSortRows_ByImage(t *testing.T) {
	rows := []listing.Row{
		{ID: "1", Image: "nginx"},
		{ID: "2", Image: "alpine"},
		{ID: "3", Image: "redis"},
	}

	sorted := sortRows(rows, "image", false)

	wantOrder := []string{"2", "1", "3"}
	for i, id := range wantOrder {
		if sorted[i].ID != id {
			t.Errorf("Expected position %d to be %q, got %q", i, id, sorted[i].ID)
		}
	}

	// 原始切片不受影响
	if rows[0].ID != "1" {
		t.Error("Expected sortRows not to mutate input")
	}
}

// TestSortRows_Descending 测试降序排序
func TestSortRows_Descending(t *testing.T) {
	rows := []listing.Row{
		{ID: "1", Image: "alpine"},
		{ID: "2", Image: "redis"},
	}

	sorted := sortRows(rows, "image", true)
	if sorted[0].ID != "2" || sorted[1].ID != "1" {
		t.Errorf("Expected descending order [2 1], got [%s %s]", sorted[0].ID, sorted[1].ID)
	}
}

// TestSortRows_ByCreated 测试按创建时间排序
func TestSortRows_ByCreated(t *testing.T) {
	now := time.Now()
	rows := []listing.Row{
		{ID: "new", Created: now},
		{ID: "old", Created: now.Add(-time.Hour)},
	}

	sorted := sortRows(rows, "created", false)
	if sorted[0].ID != "old" {
		t.Errorf("Expected oldest first, got %q", sorted[0].ID)
	}
}

// TestSortRows_Stable 测试同键值保持原始相对顺序
func TestSortRows_Stable(t *testing.T) {
	rows := []listing.Row{
		{ID: "first", Image: "nginx"},
		{ID: "second", Image: "nginx"},
		{ID: "third", Image: "nginx"},
	}

	sorted := sortRows(rows, "image", false)
	wantOrder := []string{"first", "second", "third"}
	for i, id := range wantOrder {
		if sorted[i].ID != id {
			t.Errorf("Expected stable order at %d: %q, got %q", i, id, sorted[i].ID)
		}
	}
}

// TestNextSortColumn 测试排序列循环
func TestNextSortColumn(t *testing.T) {
	if got := nextSortColumn("id"); got != "names" {
		t.Errorf("Expected 'names' after 'id', got %q", got)
	}
	if got := nextSortColumn("ports"); got != "id" {
		t.Errorf("Expected wrap to 'id' after 'ports', got %q", got)
	}
	if got := nextSortColumn("bogus"); got != "id" {
		t.Errorf("Expected fallback to 'id' for unknown column, got %q", got)
	}
}

// TestParseCopyInput 测试复制路径输入解析
func TestParseCopyInput(t *testing.T) {
	cpath, hpath, err := parseCopyInput("/etc/nginx.conf /tmp/backup.conf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cpath != "/etc/nginx.conf" || hpath != "/tmp/backup.conf" {
		t.Errorf("Expected paths split, got %q %q", cpath, hpath)
	}

	if _, _, err := parseCopyInput("only-one-path"); err == nil {
		t.Error("Expected error for single path")
	}
	if _, _, err := parseCopyInput("a b c"); err == nil {
		t.Error("Expected error for three fields")
	}
}

// TestRebuildTable_MarkColumn 测试标记列渲染
func TestRebuildTable_MarkColumn(t *testing.T) {
	v := newTestView()
	v.rows = []listing.Row{
		{ID: "aaa", Image: "nginx"},
		{ID: "bbb", Image: "redis"},
	}
	v.toggleMark("bbb")
	v.rebuildTable()

	tableRows := v.tableModel.Rows()
	if len(tableRows) != 2 {
		t.Fatalf("Expected 2 table rows, got %d", len(tableRows))
	}
	if tableRows[0][0] == " " && tableRows[1][0] == " " {
		t.Error("Expected marked row to carry a mark glyph")
	}
}
