// Package session 管理长时运行的流式会话（attach、logs -f、交互式 shell）。
// 会话以输出面板名称为键：对同一目标再次发起相同操作时，
// 旧会话被终止并替换，避免无限累积。
package session

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session 一个活跃的流式会话
type Session struct {
	ID        string    // 会话 ID（uuid 前 8 位）
	Name      string    // 面板名称，如 "logs abc123"
	StartedAt time.Time // 启动时间

	closer io.Closer // 关闭即终止底层子进程
	once   sync.Once
}

// Close 终止会话，可安全重复调用
func (s *Session) Close() error {
	var err error
	s.once.Do(func() {
		if s.closer != nil {
			err = s.closer.Close()
		}
	})
	return err
}

// Registry 会话注册表
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session // 面板名称 -> 会话
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Open 注册一个新会话。同名会话已存在时先终止旧会话再替换。
func (r *Registry) Open(name string, closer io.Closer) *Session {
	r.mu.Lock()
	old := r.sessions[name]
	s := &Session{
		ID:        newSessionID(),
		Name:      name,
		StartedAt: time.Now(),
		closer:    closer,
	}
	r.sessions[name] = s
	r.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return s
}

// Stop 终止并移除指定面板的会话，不存在时返回 false
func (r *Registry) Stop(name string) bool {
	r.mu.Lock()
	s, ok := r.sessions[name]
	if ok {
		delete(r.sessions, name)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	s.Close()
	return true
}

// Get 返回指定面板的会话，不存在时为 nil
func (r *Registry) Get(name string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[name]
}

// Active 返回所有活跃会话，按启动时间排序不做保证
func (r *Registry) Active() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		active = append(active, s)
	}
	return active
}

// CloseAll 终止全部会话（程序退出时调用）
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

// newSessionID 生成会话 ID
func newSessionID() string {
	return uuid.New().String()[:8]
}
