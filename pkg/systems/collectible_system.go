package systems

import (
	"log"
	"math"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/game"
	"github.com/decker502/stonekeep/pkg/interaction"
)

// CollectibleSystem 金币自转和拾取
type CollectibleSystem struct {
	entityManager *ecs.EntityManager
	score         *game.ScoreKeeper
	collected     int
}

// NewCollectibleSystem 创建金币系统，score 可为 nil（只销毁不计分）
func NewCollectibleSystem(em *ecs.EntityManager, score *game.ScoreKeeper) *CollectibleSystem {
	return &CollectibleSystem{
		entityManager: em,
		score:         score,
	}
}

// Update 旋转所有金币并拾取玩家范围内的金币
func (s *CollectibleSystem) Update(deltaTime float64) {
	_, _, playerPos, hasPlayer := findPlayer(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](s.entityManager) {
		coin, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		coin.Rotation = math.Mod(coin.Rotation+coin.RotationSpeed*deltaTime, 360)

		if !hasPlayer {
			continue
		}
		if interaction.Distance(playerPos.Vec3(), pos.Vec3()) > coin.PickupRadius {
			continue
		}

		// 立即移除组件，避免在实体真正删除前被重复拾取
		ecs.RemoveComponent[*components.CollectibleComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
		s.collected++
		log.Printf("[CollectibleSystem] 拾取金币 %d", id)

		if s.score != nil {
			s.score.Add(coin.Value)
		}
	}
}

// Collected 本关已拾取的金币数量
func (s *CollectibleSystem) Collected() int {
	return s.collected
}

// Remaining 剩余金币数量
func (s *CollectibleSystem) Remaining() int {
	return len(ecs.GetEntitiesWith1[*components.CollectibleComponent](s.entityManager))
}
