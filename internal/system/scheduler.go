// internal/system/scheduler.go
package system

import (
	"sort"

	"go-artillery/internal/types"
)

// TimerKind — вид отложенного действия. На каждую пару (владелец, вид)
// существует не более одного ожидающего таймера: повторный Schedule
// отменяет предыдущий (cancel-and-replace).
type TimerKind string

const (
	TimerStandUp    TimerKind = "stand_up"
	TimerTransition TimerKind = "transition"
	TimerEnemyFire  TimerKind = "enemy_fire"
	TimerTurnGuard  TimerKind = "turn_guard"
)

type timerKey struct {
	Owner types.EntityID
	Kind  TimerKind
}

type pendingTimer struct {
	deadline float64
	seq      uint64
	fn       func()
}

// Scheduler — замена корутинных ожиданий: пары (дедлайн, продолжение),
// привязанные к сущности и виду. Продолжения выполняются на первом тике
// после дедлайна, в порядке дедлайнов.
type Scheduler struct {
	now     float64
	nextSeq uint64
	pending map[timerKey]*pendingTimer
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[timerKey]*pendingTimer)}
}

// Schedule ставит отложенное действие. Уже ожидающий таймер того же
// владельца и вида отменяется и заменяется новым.
func (s *Scheduler) Schedule(owner types.EntityID, kind TimerKind, delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.nextSeq++
	s.pending[timerKey{owner, kind}] = &pendingTimer{
		deadline: s.now + delay,
		seq:      s.nextSeq,
		fn:       fn,
	}
}

// Cancel отменяет ожидающий таймер, если он есть.
func (s *Scheduler) Cancel(owner types.EntityID, kind TimerKind) {
	delete(s.pending, timerKey{owner, kind})
}

// CancelAll отменяет все таймеры владельца.
func (s *Scheduler) CancelAll(owner types.EntityID) {
	for key := range s.pending {
		if key.Owner == owner {
			delete(s.pending, key)
		}
	}
}

// Reset снимает все таймеры и обнуляет часы.
func (s *Scheduler) Reset() {
	s.now = 0
	s.pending = make(map[timerKey]*pendingTimer)
}

// Pending сообщает, ожидает ли таймер данного владельца и вида.
func (s *Scheduler) Pending(owner types.EntityID, kind TimerKind) bool {
	_, ok := s.pending[timerKey{owner, kind}]
	return ok
}

// Update продвигает часы и выполняет все созревшие продолжения.
// Порядок детерминирован: по дедлайну, затем по порядку постановки.
func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	type due struct {
		key   timerKey
		timer *pendingTimer
	}
	var ready []due
	for key, t := range s.pending {
		if t.deadline <= s.now {
			ready = append(ready, due{key, t})
		}
	}
	if len(ready) == 0 {
		return
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].timer.deadline != ready[j].timer.deadline {
			return ready[i].timer.deadline < ready[j].timer.deadline
		}
		return ready[i].timer.seq < ready[j].timer.seq
	})
	for _, d := range ready {
		// Продолжение могло быть заменено или отменено более ранним
		// продолжением этого же тика
		current, ok := s.pending[d.key]
		if !ok || current != d.timer {
			continue
		}
		delete(s.pending, d.key)
		d.timer.fn()
	}
}
