package main

import (
	"log"
	"os"
	"runtime"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("vectorcalc failed (%s): %v", runtime.Version(), err)
		os.Exit(1)
	}
}
