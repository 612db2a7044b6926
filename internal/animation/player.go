// Package animation реализует декоративную анимацию покупки кофе.
// Анимация запускается по событию покупки и живёт независимо от движка:
// движок её не ждёт.
package animation

import (
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultDuration = 4 * time.Second
	frameInterval   = 60 * time.Millisecond
)

// Frame — состояние одного кадра анимации для клиента.
type Frame struct {
	Progress     float64 `json:"progress"`
	Scale        float64 `json:"scale"`
	RotationY    float64 `json:"rotation_y"`
	SteamOpacity float64 `json:"steam_opacity"`
}

// Player управляет циклом анимации. Одновременно может идти только одна
// анимация: повторный запуск во время проигрывания отклоняется, а не
// ставится в очередь. Остановка — явный сигнал; флаг занятости снимается
// только по завершении цикла.
type Player struct {
	logger   *zap.Logger
	duration time.Duration

	mu        sync.Mutex
	animating bool
	stop      chan struct{}
	lastFrame Frame
}

// NewPlayer создаёт плеер анимации со стандартной длительностью.
func NewPlayer(logger *zap.Logger) *Player {
	return &Player{
		logger:   logger,
		duration: defaultDuration,
	}
}

// NewPlayerWithDuration создаёт плеер с указанной длительностью (для тестов).
func NewPlayerWithDuration(logger *zap.Logger, duration time.Duration) *Player {
	return &Player{
		logger:   logger,
		duration: duration,
	}
}

// Start запускает цикл анимации. Возвращает false, если анимация уже идёт.
func (p *Player) Start() bool {
	p.mu.Lock()
	if p.animating {
		p.mu.Unlock()
		return false
	}
	p.animating = true
	p.stop = make(chan struct{})
	stop := p.stop
	p.mu.Unlock()

	go p.run(stop)
	return true
}

// Stop посылает сигнал остановки текущей анимации.
// Вызов без идущей анимации безопасен.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.animating || p.stop == nil {
		return
	}
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
}

// IsAnimating сообщает, идёт ли анимация в данный момент.
func (p *Player) IsAnimating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.animating
}

// LastFrame возвращает состояние последнего рассчитанного кадра.
func (p *Player) LastFrame() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFrame
}

func (p *Player) run(stop chan struct{}) {
	started := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	p.logger.Debug("coffee animation started")

	for {
		select {
		case <-stop:
			p.finish("stopped")
			return
		case now := <-ticker.C:
			elapsed := now.Sub(started)
			if elapsed >= p.duration {
				p.finish("completed")
				return
			}
			frame := frameAt(elapsed, p.duration)
			p.mu.Lock()
			p.lastFrame = frame
			p.mu.Unlock()
		}
	}
}

// finish снимает флаг занятости: состояние «не анимируется» выставляется
// только в конце цикла.
func (p *Player) finish(reason string) {
	p.mu.Lock()
	p.animating = false
	p.lastFrame = Frame{}
	p.mu.Unlock()
	p.logger.Debug("coffee animation finished", zap.String("reason", reason))
}

// frameAt рассчитывает кадр: пульсация масштаба, покачивание и
// рассеивающийся пар.
func frameAt(elapsed, duration time.Duration) Frame {
	seconds := elapsed.Seconds()
	progress := seconds / duration.Seconds()
	if progress > 1 {
		progress = 1
	}

	steam := 0.6 - progress*0.8
	if steam < 0 {
		steam = 0
	}

	return Frame{
		Progress:     progress,
		Scale:        1 + math.Sin(seconds*0.8)*0.1,
		RotationY:    math.Sin(seconds*0.5) * 0.3,
		SteamOpacity: steam,
	}
}
