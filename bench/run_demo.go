// 阶段 demo: 教程场景，逐元素加法热身 + SoA 批量点积
package main

import (
	"fmt"
	"log"

	"github.com/ic-timon/soa-dot/buffer"
	"github.com/ic-timon/soa-dot/simd"
	"github.com/ic-timon/soa-dot/soa"
)

func runDemo() {
	fmt.Printf("核函数实现: %s\n", simd.DotBatchSoADesc())

	// 热身：foo[i] = i, bar[i] = i*0.1，逐元素相加
	const warmN = 8
	foo := buffer.NewHeap(warmN)
	bar := buffer.NewHeap(warmN)
	sum := buffer.NewHeap(warmN)
	defer foo.Close()
	defer bar.Close()
	defer sum.Close()
	for i := 0; i < warmN; i++ {
		foo.Data()[i] = float32(i)
		bar.Data()[i] = float32(i) * 0.1
	}
	if !simd.AddBlocks(sum.Data(), foo.Data(), bar.Data()) {
		log.Fatal("AddBlocks failed")
	}
	fmt.Println("逐元素加法:")
	for _, v := range sum.Data() {
		fmt.Printf("%f\n", v)
	}
	fmt.Println()

	// 批量点积：参考向量 (1,1,1,1)，其余 63 个向量均为 (0.1,0.1,0.1,0.1)
	const n = 64
	c, err := soa.NewCoords(&soa.Config{Count: n})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()
	c.Set(0, 1, 1, 1, 1)
	for i := 1; i < n; i++ {
		c.Set(i, 0.1, 0.1, 0.1, 0.1)
	}
	if !c.Dot() {
		log.Fatal("Dot failed")
	}
	fmt.Println("批量点积（前 8 个结果，result[0] 为参考向量模长平方）:")
	for _, v := range c.Results()[:8] {
		fmt.Printf("%f\n", v)
	}
}
