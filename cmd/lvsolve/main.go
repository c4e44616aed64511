// Command lvsolve runs the serial/parallel timing benchmarks.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvsolve/matrix"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvsolve: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "iterate":
		err = cmdIterate(ctx, os.Args[2:])
	case "dgemv":
		err = cmdDGEMV(ctx, os.Args[2:])
	case "integrate":
		err = cmdIntegrate(ctx, os.Args[2:])
	case "sinsum":
		err = cmdSinSum(ctx, os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		stop()
		fail(err)
	}
}

func usage() {
	fmt.Println("lvsolve - serial/parallel numeric benchmarks")
	fmt.Println("usage: lvsolve <command> [flags] [N]")
	fmt.Println("  iterate   [N]  simple iteration x := x - tau(Ax-b), N default 5")
	fmt.Println("                 [-tau 0.0005] [-eps 1e-5] [-max-iter N] [-workers 1,2,4]")
	fmt.Println("                 [-schedule static|dynamic|guided] [-chunk C] [-verify] [-v]")
	fmt.Println("  dgemv     [N]  y = A*v on an NxN fixture, N default 20000")
	fmt.Println("  integrate      midpoint rule for exp(-x^2) on [-4, 4] [-steps 40000000]")
	fmt.Println("  sinsum         sum of sin over one period [-n 10000000] [-float32]")
}

// fail reports err and exits with status 1. Allocation failures print the
// fixed message on stdout.
func fail(err error) {
	if errors.Is(err, matrix.ErrAllocation) {
		fmt.Println("Error allocate memory!")
		os.Exit(1)
	}
	log.Fatal(err)
}
