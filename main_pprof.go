//go:build !no_pprof
// +build !no_pprof

package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"

	"fortio.org/log"
)

var (
	cpuprofile = flag.String("profile-cpu", "", "write cpu profile of indexing and queries to `file`")
	memprofile = flag.String("profile-mem", "", "write memory profile, after indexing and queries, to `file`")
)

func init() {
	hookBefore = pprofBeforeHook
	hookAfter = pprofAfterHook
}

func pprofBeforeHook() int {
	if *cpuprofile == "" {
		return 0
	}
	f, err := os.Create(*cpuprofile)
	if err != nil {
		return log.FErrf("can't open file for cpu profile: %v", err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		return log.FErrf("can't start cpu profile: %v", err)
	}
	log.Infof("Writing cpu profile to %s", *cpuprofile)
	return 0
}

func pprofAfterHook() int {
	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}
	if *memprofile == "" {
		return 0
	}
	// The tree is still live here, so the heap numbers include it.
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	log.Infof("Heap in use %d bytes, %d objects", ms.HeapInuse, ms.HeapObjects)
	f, err := os.Create(*memprofile)
	if err != nil {
		return log.FErrf("can't open file for mem profile: %v", err)
	}
	defer f.Close()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return log.FErrf("can't write mem profile: %v", err)
	}
	log.Infof("Wrote memory profile to %s", *memprofile)
	return 0
}
