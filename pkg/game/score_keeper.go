package game

import (
	"fmt"
	"log"

	"github.com/decker502/stonekeep/pkg/interaction"
)

// ScoreKeeper 分数记录
// 由关卡场景创建并显式传给需要加分的系统
type ScoreKeeper struct {
	score   int
	display interaction.TextDisplay // 可为 nil
}

// NewScoreKeeper 创建分数记录并渲染初始分数
func NewScoreKeeper(initial int, display interaction.TextDisplay) *ScoreKeeper {
	sk := &ScoreKeeper{score: initial, display: display}
	sk.Render()
	return sk
}

// Add 加分并刷新显示
func (sk *ScoreKeeper) Add(points int) {
	sk.score += points
	log.Printf("[ScoreKeeper] Score: %d (+%d)", sk.score, points)
	sk.Render()
}

// Score 当前分数
func (sk *ScoreKeeper) Score() int {
	return sk.score
}

// Text 当前分数文本
func (sk *ScoreKeeper) Text() string {
	return fmt.Sprintf("Score: %d", sk.score)
}

// Render 将分数写到显示面板
func (sk *ScoreKeeper) Render() {
	if sk.display != nil {
		sk.display.SetMessage(sk.Text())
	}
}
