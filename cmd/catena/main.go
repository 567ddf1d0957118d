package main

import (
	"fmt"
	"os"

	"github.com/r2unit/catena/pkg/bench"
	cbytes "github.com/r2unit/catena/pkg/bytes"
	"github.com/r2unit/catena/pkg/config"
	"github.com/r2unit/catena/pkg/instances"
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		return
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "hash":
		handleHash(args)
	case "keyed-hash":
		handleKeyedHash(args)
	case "generate-key":
		handleGenerateKey(args)
	case "ci-update":
		handleCIUpdate(args)
	case "bench":
		handleBench(args)
	case "help", "--help", "-h":
		showHelp()
	default:
		showHelp()
		os.Exit(1)
	}
}

// handleHash implements `catena hash pwd salt [ad] [instance] [m]`, mirroring
// the positional argument convention of the original example driver:
// pwd is taken as UTF-8 bytes, salt and ad as hex.
func handleHash(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: catena hash <pwd> <salt-hex> [ad-hex] [instance] [m]")
		os.Exit(1)
	}

	cfg, _ := config.Load()

	pwd := []byte(args[0])
	salt, err := cbytes.ParseHex(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "catena: invalid salt hex: %v\n", err)
		os.Exit(1)
	}

	ad := []byte(cfg.DefaultAD)
	if len(args) > 2 {
		ad, err = cbytes.ParseHex(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "catena: invalid ad hex: %v\n", err)
			os.Exit(1)
		}
	}

	instanceName := cfg.DefaultInstance
	if len(args) > 3 {
		instanceName = args[3]
	}

	m := cfg.OutputLength
	if len(args) > 4 {
		fmt.Sscanf(args[4], "%d", &m)
	}

	inst, ok := instances.Named(instanceName)
	if !ok {
		fmt.Fprintf(os.Stderr, "catena: unknown instance %q (available: %v)\n", instanceName, instances.Names())
		os.Exit(1)
	}

	out, err := inst.Hash(pwd, salt, ad, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catena: hash failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(cbytes.HexString(out))
}

func handleKeyedHash(args []string) {
	if len(args) < 5 {
		fmt.Fprintln(os.Stderr, "usage: catena keyed-hash <pwd> <salt-hex> <ad-hex> <uid-hex> <server-key-hex> [instance] [g-high] [m]")
		os.Exit(1)
	}

	cfg, _ := config.Load()
	pwd := []byte(args[0])
	salt, err1 := cbytes.ParseHex(args[1])
	ad, err2 := cbytes.ParseHex(args[2])
	uid, err3 := cbytes.ParseHex(args[3])
	serverKey, err4 := cbytes.ParseHex(args[4])
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "catena: invalid hex argument: %v\n", err)
			os.Exit(1)
		}
	}

	instanceName := cfg.DefaultInstance
	if len(args) > 5 {
		instanceName = args[5]
	}

	inst, ok := instances.Named(instanceName)
	if !ok {
		fmt.Fprintf(os.Stderr, "catena: unknown instance %q\n", instanceName)
		os.Exit(1)
	}

	gHigh := int(inst.GHigh)
	if len(args) > 6 {
		fmt.Sscanf(args[6], "%d", &gHigh)
	}
	m := cfg.OutputLength
	if len(args) > 7 {
		fmt.Sscanf(args[7], "%d", &m)
	}

	out, err := inst.KeyedHashing(pwd, salt, ad, uid, serverKey, uint8(gHigh), m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catena: keyed-hash failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(cbytes.HexString(out))
}

func handleGenerateKey(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: catena generate-key <pwd> <salt-hex> <ad-hex> <key-id-hex> [instance] [key-len]")
		os.Exit(1)
	}

	cfg, _ := config.Load()
	pwd := []byte(args[0])
	salt, err1 := cbytes.ParseHex(args[1])
	ad, err2 := cbytes.ParseHex(args[2])
	keyID, err3 := cbytes.ParseHex(args[3])
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "catena: invalid hex argument: %v\n", err)
			os.Exit(1)
		}
	}

	instanceName := cfg.DefaultInstance
	if len(args) > 4 {
		instanceName = args[4]
	}
	keyLen := cfg.OutputLength
	if len(args) > 5 {
		fmt.Sscanf(args[5], "%d", &keyLen)
	}

	inst, ok := instances.Named(instanceName)
	if !ok {
		fmt.Fprintf(os.Stderr, "catena: unknown instance %q\n", instanceName)
		os.Exit(1)
	}

	out, err := inst.GenerateKey(pwd, salt, ad, keyID, keyLen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catena: generate-key failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(cbytes.HexString(out))
}

func handleCIUpdate(args []string) {
	if len(args) < 5 {
		fmt.Fprintln(os.Stderr, "usage: catena ci-update <old-hash-hex> <salt-hex> <old-garlic> <new-garlic> <m> [instance]")
		os.Exit(1)
	}

	cfg, _ := config.Load()
	oldHash, err1 := cbytes.ParseHex(args[0])
	salt, err2 := cbytes.ParseHex(args[1])
	for _, err := range []error{err1, err2} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "catena: invalid hex argument: %v\n", err)
			os.Exit(1)
		}
	}

	var oldGarlic, newGarlic, m int
	fmt.Sscanf(args[2], "%d", &oldGarlic)
	fmt.Sscanf(args[3], "%d", &newGarlic)
	fmt.Sscanf(args[4], "%d", &m)

	instanceName := cfg.DefaultInstance
	if len(args) > 5 {
		instanceName = args[5]
	}

	inst, ok := instances.Named(instanceName)
	if !ok {
		fmt.Fprintf(os.Stderr, "catena: unknown instance %q\n", instanceName)
		os.Exit(1)
	}

	out, err := inst.ClientIndependentUpdate(oldHash, salt, uint8(oldGarlic), uint8(newGarlic), m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catena: ci-update failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(cbytes.HexString(out))
}

func handleBench(args []string) {
	pwd, salt, ad := []byte("benchmark-password"), []byte("0123456789abcdef0123456789abcdef"), []byte(nil)
	m := 32

	headless := false
	for _, a := range args {
		if a == "--headless" {
			headless = true
		}
	}

	if headless {
		results := bench.Run(pwd, salt, ad, m)
		fmt.Print(bench.Summary(results))
		return
	}

	if err := bench.RunInteractive(pwd, salt, ad, m); err != nil {
		fmt.Fprintf(os.Stderr, "catena: bench failed: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	help := `catena - memory-hard password scrambling

COMMANDS:
    catena hash <pwd> <salt-hex> [ad-hex] [instance] [m]
    catena keyed-hash <pwd> <salt-hex> <ad-hex> <uid-hex> <server-key-hex> [instance] [g-high] [m]
    catena generate-key <pwd> <salt-hex> <ad-hex> <key-id-hex> [instance] [key-len]
    catena ci-update <old-hash-hex> <salt-hex> <old-garlic> <new-garlic> <m> [instance]
    catena bench [--headless]
    catena help

INSTANCES:
    Dragonfly, Dragonfly-Full, Butterfly, Butterfly-Full,
    Horsefly, Horsefly-Full, Stonefly, Stonefly-Full,
    Lanternfly, Lanternfly-Full

EXAMPLES:
    catena hash hunter2 0123456789abcdef0123456789abcdef
    catena hash hunter2 0123456789abcdef0123456789abcdef "" Stonefly 32
    catena bench --headless
`
	fmt.Print(help)
}
