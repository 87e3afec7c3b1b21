// Package scenes 实现可切换的场景：开始菜单和由关卡配置生成的可游玩关卡
package scenes

import (
	"github.com/decker502/stonekeep/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene            = (*MenuScene)(nil)
	_ Scene            = (*LevelScene)(nil)
	_ game.Saveable    = (*LevelScene)(nil)
	_ game.Activatable = (*LevelScene)(nil)
)
