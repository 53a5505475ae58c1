package systems

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"

	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const frame = 1.0 / 60.0

// missingLoader 所有资源都不存在，LoadArt 全部生成占位图
type missingLoader struct{}

func (missingLoader) LoadImage(string) (*ebiten.Image, error) {
	return nil, errors.New("not found")
}

func (missingLoader) LoadFolder(string) ([]*ebiten.Image, error) {
	return nil, errors.New("not found")
}

// inventory 记录入账资源的 ResourceSink
type inventory map[types.Resource]int

func (inv inventory) Credit(r types.Resource) {
	inv[r]++
}

// soundLog 记录播放过的音效
type soundLog []string

func (l *soundLog) PlaySound(id string) bool {
	*l = append(*l, id)
	return true
}

// farm 测试用的小型农场：实体管理器、时钟和耕地系统
type farm struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	art    *entities.Art
	clock  *utils.FrameClock
	rng    *rand.Rand
	plants *PlantSystem
	soil   *SoilSystem
}

// newFarm 创建 rows×cols 的农场，所有格子都可耕作
func newFarm(t *testing.T, rows, cols int) *farm {
	t.Helper()
	f := &farm{
		em:    ecs.NewEntityManager(),
		cfg:   config.DefaultGameConfig(),
		art:   entities.LoadArt(missingLoader{}, "assets"),
		clock: utils.NewFrameClock(),
		rng:   rand.New(rand.NewPCG(7, 11)),
	}
	ts := f.cfg.TileSize
	f.plants = NewPlantSystem(f.em, f.cfg)
	f.soil = NewSoilSystem(f.em, f.cfg, f.art, f.clock, f.rng, f.plants, image.Pt(cols*ts, rows*ts))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.soil.MarkFarmable(r, c)
		}
	}
	return f
}

// at 返回格子中心的像素坐标
func (f *farm) at(row, col int) image.Point {
	return utils.Center(utils.TileRect(row, col, f.cfg.TileSize))
}

// advance 推进时钟
func (f *farm) advance(seconds float64) {
	f.clock.Advance(seconds)
}
