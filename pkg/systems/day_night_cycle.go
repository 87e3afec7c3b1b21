package systems

import (
	"math"

	"github.com/decker502/stonekeep/pkg/config"
)

// intensityCurve 太阳光强度曲线（归一化时间 -> 强度），分段线性
var intensityCurve = []struct{ t, v float64 }{
	{0, 0},
	{0.25, 0.6},
	{0.5, 1},
	{0.75, 0.6},
	{1, 0},
}

// DayNightCycle 昼夜循环
//
// 时间用 [0, 1) 的归一化值表示，0 为午夜，0.5 为正午。
// 太阳角度 = normalized*360 - 90，正午时为 90 度（头顶）。
type DayNightCycle struct {
	normalized    float64
	secondsPerDay float64
	timeScale     float64
	paused        bool
}

// NewDayNightCycle 根据关卡配置创建昼夜循环
func NewDayNightCycle(cfg config.DayNightConfig) *DayNightCycle {
	secondsPerDay := cfg.DayDurationMinutes * 60
	if secondsPerDay <= 0 {
		secondsPerDay = config.DefaultDayDurationMinutes * 60
	}
	timeScale := cfg.TimeScale
	if timeScale == 0 {
		timeScale = 1
	}

	c := &DayNightCycle{
		secondsPerDay: secondsPerDay,
		timeScale:     timeScale,
		paused:        cfg.Paused,
	}
	c.SetHour(cfg.StartHour)
	return c
}

// Update 推进时间
func (c *DayNightCycle) Update(deltaTime float64) {
	if c.paused {
		return
	}
	c.normalized = wrapUnit(c.normalized + deltaTime*c.timeScale/c.secondsPerDay)
}

// SetHour 设置当前小时（0-24，超出范围会回绕）
func (c *DayNightCycle) SetHour(hour float64) {
	c.normalized = wrapUnit(hour / 24)
}

// Hour 当前小时 [0, 24)
func (c *DayNightCycle) Hour() float64 {
	return c.normalized * 24
}

// Normalized 归一化时间 [0, 1)
func (c *DayNightCycle) Normalized() float64 {
	return c.normalized
}

// SetPaused 暂停或恢复时间推进
func (c *DayNightCycle) SetPaused(paused bool) {
	c.paused = paused
}

// Paused 时间是否暂停
func (c *DayNightCycle) Paused() bool {
	return c.paused
}

// SunAngle 太阳角度（度）
func (c *DayNightCycle) SunAngle() float64 {
	return c.normalized*360 - 90
}

// Intensity 太阳光强度 [0, 1]
func (c *DayNightCycle) Intensity() float64 {
	t := c.normalized
	for i := 1; i < len(intensityCurve); i++ {
		prev, next := intensityCurve[i-1], intensityCurve[i]
		if t <= next.t {
			f := (t - prev.t) / (next.t - prev.t)
			return prev.v + f*(next.v-prev.v)
		}
	}
	return intensityCurve[len(intensityCurve)-1].v
}

func wrapUnit(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
