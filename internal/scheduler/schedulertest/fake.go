// Package schedulertest содержит ручной планировщик для детерминированных тестов
package schedulertest

import (
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/scheduler"
)

// Fake реализует scheduler.Scheduler с ручным управлением временем.
// Задачи выполняются синхронно внутри Advance в порядке срабатывания.
type Fake struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*fakeTask
}

type fakeTask struct {
	fake *Fake
	at   time.Time
	seq  int
	f    func()
	done bool
}

func (t *fakeTask) Cancel() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}

// New создает планировщик с начальным моментом времени
func New(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) scheduler.Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	task := &fakeTask{fake: f, at: f.now.Add(d), seq: f.seq, f: fn}
	f.tasks = append(f.tasks, task)
	return task
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance сдвигает время на d и выполняет все задачи, срок которых наступил.
// Задачи, запланированные во время выполнения, тоже учитываются.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.nextDue(target)
		if next == nil {
			f.now = target
			f.compact()
			f.mu.Unlock()
			return
		}
		next.done = true
		f.now = next.at
		f.mu.Unlock()

		next.f()
	}
}

// Pending возвращает количество задач, которые ещё не сработали и не отменены
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, t := range f.tasks {
		if !t.done {
			count++
		}
	}
	return count
}

func (f *Fake) nextDue(target time.Time) *fakeTask {
	var due []*fakeTask
	for _, t := range f.tasks {
		if !t.done && !t.at.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	return due[0]
}

func (f *Fake) compact() {
	alive := f.tasks[:0]
	for _, t := range f.tasks {
		if !t.done {
			alive = append(alive, t)
		}
	}
	f.tasks = alive
}
