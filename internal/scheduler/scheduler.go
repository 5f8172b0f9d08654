package scheduler

import "time"

// Task представляет отложенную задачу, которую можно отменить
type Task interface {
	// Cancel отменяет задачу. Возвращает false, если задача уже сработала или была отменена ранее
	Cancel() bool
}

// Scheduler планирует выполнение функций через заданный интервал
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
	Now() time.Time
}

type timerTask struct {
	timer *time.Timer
}

func (t timerTask) Cancel() bool {
	return t.timer.Stop()
}

// TimeScheduler реализует Scheduler поверх таймеров стандартной библиотеки
type TimeScheduler struct{}

// New создает планировщик на реальном времени
func New() TimeScheduler {
	return TimeScheduler{}
}

// AfterFunc запускает f в отдельной горутине по истечении d
func (TimeScheduler) AfterFunc(d time.Duration, f func()) Task {
	return timerTask{timer: time.AfterFunc(d, f)}
}

func (TimeScheduler) Now() time.Time {
	return time.Now()
}
