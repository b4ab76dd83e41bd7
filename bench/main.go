// 压测入口：-stage demo|kernel|mem
package main

import (
	"flag"
	"fmt"
	"log"
)

type stageOpts struct {
	n       int
	offheap bool
}

func main() {
	stage := flag.String("stage", "", "压测阶段: demo(教程场景) | kernel(核函数吞吐) | mem(内存布局对比)")
	n := flag.Int("n", 65536, "向量数量（4 的倍数，仅 stage kernel/mem 生效）")
	offheap := flag.Bool("offheap", false, "启用 Off-heap 内存（需 CGO）")
	flag.Parse()
	opts := stageOpts{n: *n, offheap: *offheap}
	switch *stage {
	case "demo":
		runDemo()
	case "kernel":
		runKernel(opts)
	case "mem":
		runMem(opts)
	default:
		log.Fatalf("请指定 -stage demo|kernel|mem")
	}
	fmt.Println("压测完成")
}
