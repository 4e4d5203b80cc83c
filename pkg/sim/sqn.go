package sim

import "sync"

// DefaultSQNDelta 允许 SQN 一次前跳的最大差值
const DefaultSQNDelta = 1 << 28

// SQNTracker 记录已接受的最大 SQN，用于可选的新鲜度检查
// 鉴权内核本身不做新鲜度检查，这里由调用方显式启用
type SQNTracker struct {
	mu    sync.Mutex
	sqnMS uint64 // 已接受的最大 SQN
	delta uint64 // 0 表示不限制前跳
}

// NewSQNTracker 创建 SQN 跟踪器
func NewSQNTracker(initialSQN, delta uint64) *SQNTracker {
	return &SQNTracker{sqnMS: initialSQN, delta: delta}
}

// Fresh 判断收到的 SQN 是否可接受 (不修改状态)
// 必须严格大于已接受的最大值，且前跳不超过 delta
func (t *SQNTracker) Fresh(received uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fresh(received)
}

func (t *SQNTracker) fresh(received uint64) bool {
	if received <= t.sqnMS {
		return false
	}
	if t.delta != 0 && received-t.sqnMS > t.delta {
		return false
	}
	return true
}

// Accept 在 SQN 新鲜时记录它并返回 true，检查与更新是原子的
func (t *SQNTracker) Accept(received uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.fresh(received) {
		return false
	}
	t.sqnMS = received
	return true
}

// Current 返回已接受的最大 SQN
func (t *SQNTracker) Current() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sqnMS
}

// Set 重置已接受的最大 SQN
func (t *SQNTracker) Set(sqn uint64) {
	t.mu.Lock()
	t.sqnMS = sqn
	t.mu.Unlock()
}
