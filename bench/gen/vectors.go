// Package gen 提供压测用随机 SoA 坐标集生成
package gen

import (
	"math/rand"

	"github.com/ic-timon/soa-dot/soa"
)

// Fill 用 [-1,1) 均匀分布随机数填充坐标集
func Fill(c *soa.Coords, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < c.Len(); i++ {
		c.Set(i, rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
	}
}

// RandomCoords 生成 n 个 4 分量向量的随机坐标集（n 须为 4 的倍数）
func RandomCoords(n int, seed int64, offheap bool) (*soa.Coords, error) {
	c, err := soa.NewCoords(&soa.Config{Count: n, Offheap: offheap})
	if err != nil {
		return nil, err
	}
	Fill(c, seed)
	return c, nil
}
