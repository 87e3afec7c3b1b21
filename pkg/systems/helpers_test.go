package systems

import (
	"math"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
)

const frame = 1.0 / 60.0

// createTestPlayer 在 (x, 0, z) 创建玩家实体
func createTestPlayer(em *ecs.EntityManager, x, z float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Z: z})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:            3,
		BodyVisible:      true,
		RenderersVisible: true,
	})
	return id
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
