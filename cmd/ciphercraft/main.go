// Command ciphercraft is a demo driver for the comparison package: it
// generates a DGK key pair (and a Paillier key pair in PAILLIER mode),
// spins up Alice and Bob over an
// in-process wire.Channel pair, and runs one interactive comparison
// session end to end, reporting elapsed time and the comparison result.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/adwise-fiu/Ciphercraft/comparison"
	"github.com/adwise-fiu/Ciphercraft/config"
	"github.com/adwise-fiu/Ciphercraft/dgk"
	"github.com/adwise-fiu/Ciphercraft/paillier"
	"github.com/adwise-fiu/Ciphercraft/wire"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: ciphercraft <x> <y>   (compares x and y under the configured mode/variant)")
		os.Exit(1)
	}
	x, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil {
		fatal("parsing x: %v", err)
	}
	y, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fatal("parsing y: %v", err)
	}

	cfg, err := config.Load("ciphercraft")
	if err != nil {
		fatal("loading config: %v", err)
	}

	start := time.Now()
	color.Cyan("ciphercraft: comparing %d vs %d under mode=%s variant=%s", x, y, cfg.Mode, cfg.Variant)

	bar := progressbar.Default(2, "generating keys")
	dgkPub, dgkPriv, err := dgk.GenerateKeyPair(dgk.KeyGenParams{L: cfg.DGK.L, T: cfg.DGK.T, K: cfg.DGK.K})
	if err != nil {
		fatal("generating DGK keys: %v", err)
	}
	_ = bar.Add(1)

	var paillierPub *paillier.PublicKey
	var paillierPriv *paillier.PrivateKey
	if cfg.Mode == comparison.PaillierMode {
		paillierPub, paillierPriv, err = paillier.GenerateKeyPair(cfg.Paillier.KeySize, cfg.Paillier.UseFastVariant)
		if err != nil {
			fatal("generating Paillier keys: %v", err)
		}
	}
	_ = bar.Add(1)
	_ = bar.Finish()

	aliceConn, bobConn := net.Pipe()
	defer aliceConn.Close()
	defer bobConn.Close()

	aliceLog := log.New(os.Stdout, "alice: ", log.LstdFlags)
	bobLog := log.New(os.Stdout, "bob:   ", log.LstdFlags)

	alice, err := comparison.NewAlice(wire.New(aliceConn), cfg.Mode, cfg.Variant, cfg.DGK.L, dgkPub, paillierPub, aliceLog)
	if err != nil {
		fatal("constructing Alice: %v", err)
	}
	bob, err := comparison.NewBob(wire.New(bobConn), cfg.Mode, cfg.Variant, cfg.DGK.L, dgkPriv, paillierPriv, bobLog)
	if err != nil {
		fatal("constructing Bob: %v", err)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	var result bool
	var aliceErr, bobErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		result, aliceErr = alice.Protocol1(ctx, x)
	}()
	go func() {
		defer wg.Done()
		bobErr = bob.Protocol1(ctx, y)
	}()
	wg.Wait()

	if aliceErr != nil {
		fatal("alice: %v", aliceErr)
	}
	if bobErr != nil {
		fatal("bob: %v", bobErr)
	}

	// Protocol1 reports x<=y for ORIGINAL/VEUGEN and x<y for JOYE.
	holds, fails := "<=", ">"
	if cfg.Variant == comparison.Joye {
		holds, fails = "<", ">="
	}
	if result {
		color.Green("result: %d %s %d", x, holds, y)
	} else {
		color.Red("result: %d %s %d", x, fails, y)
	}
	fmt.Printf("%.3fs elapsed\n", time.Since(start).Seconds())
}

func fatal(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}
