package utils

import "time"

// Clock 提供当前游戏时间
// 计时器只依赖 Clock 而不是墙上时钟，便于测试时逐帧推进
type Clock interface {
	Now() time.Duration
}

// FrameClock 由游戏循环每帧推进的时钟
type FrameClock struct {
	now time.Duration
}

// NewFrameClock 创建从 0 开始的帧时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Advance 推进时钟
// 参数:
//   - deltaTime: 本帧经过的时间（秒）
func (c *FrameClock) Advance(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	c.now += time.Duration(deltaTime * float64(time.Second))
}

// Now 返回自创建以来累计的游戏时间
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Timer 冷却 / 一次性定时器
//
// Start 后每帧调用 Update，经过 duration 后触发一次回调并自动停止。
// Stop 会丢弃尚未触发的回调。活动状态下再次 Start 会重新计时。
type Timer struct {
	clock     Clock
	duration  time.Duration
	callback  func()
	startTime time.Duration
	active    bool
}

// NewTimer 创建定时器
// 参数:
//   - clock: 时间来源
//   - duration: 持续时间
//   - callback: 到期回调，可为 nil（纯冷却计时）
func NewTimer(clock Clock, duration time.Duration, callback func()) *Timer {
	return &Timer{
		clock:    clock,
		duration: duration,
		callback: callback,
	}
}

// Start 记录开始时间并激活
func (t *Timer) Start() {
	t.active = true
	t.startTime = t.clock.Now()
}

// Stop 停止计时并清零开始时间
func (t *Timer) Stop() {
	t.active = false
	t.startTime = 0
}

// Update 检查是否到期，到期时先停止再调用回调
// 回调内可以安全地重新 Start 同一个定时器
func (t *Timer) Update() {
	if !t.active {
		return
	}
	if t.clock.Now()-t.startTime < t.duration {
		return
	}

	t.Stop()
	if t.callback != nil {
		t.callback()
	}
}

// SetCallback 替换到期回调（实体先创建、系统后绑定行为时使用）
func (t *Timer) SetCallback(callback func()) {
	t.callback = callback
}

// Active 定时器是否在计时中
func (t *Timer) Active() bool {
	return t.active
}

// Duration 返回配置的持续时间
func (t *Timer) Duration() time.Duration {
	return t.duration
}
