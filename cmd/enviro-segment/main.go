package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sushil-thakur/enviro-segment/internal/engine"
	"github.com/sushil-thakur/enviro-segment/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// stdout carries the result JSON; everything else goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("enviro-segment %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "serve":
			runServe(os.Args[2:])
			return
		}
	}

	result, err := runOnce(os.Args[1:])
	if err != nil {
		emit(engine.FailureResult(err))
		os.Exit(1)
	}
	emit(result)
}

// runOnce executes a single CLI invocation: one JSON parameter object
// (inline or @path-to-file), one result on stdout.
func runOnce(args []string) (*engine.Result, error) {
	if len(args) != 1 {
		return nil, &engine.InvalidInputError{Reason: "expected exactly one JSON parameter argument"}
	}

	raw := args[0]
	if strings.HasPrefix(raw, "@") {
		data, err := os.ReadFile(raw[1:])
		if err != nil {
			return nil, &engine.InvalidInputError{Reason: "could not read parameter file: " + err.Error()}
		}
		raw = string(data)
	}

	var params engine.Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, &engine.InvalidInputError{Reason: "malformed parameter JSON: " + err.Error()}
	}

	return newEngine().Run(params)
}

// runServe starts the long-lived HTTP mode. The listen address comes
// from the optional positional argument, then ENVIRO_SEGMENT_ADDR,
// then the default.
func runServe(args []string) {
	addr := os.Getenv("ENVIRO_SEGMENT_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if len(args) > 0 {
		addr = args[0]
	}

	srv := server.New(newEngine())
	log.Fatal(srv.ListenAndServe(addr))
}

func newEngine() *engine.Engine {
	quality := engine.DefaultJPEGQuality
	if v := os.Getenv("ENVIRO_SEGMENT_JPEG_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			log.Printf("ignoring invalid ENVIRO_SEGMENT_JPEG_QUALITY=%q", v)
		} else {
			quality = q
		}
	}
	return engine.New(engine.Options{
		JPEGQuality: quality,
		Debug:       os.Getenv("ENVIRO_SEGMENT_LOG_LEVEL") == "debug",
	})
}

func emit(r *engine.Result) {
	if err := json.NewEncoder(os.Stdout).Encode(r); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}
}

func printUsage() {
	fmt.Println("enviro-segment - environmental segmentation engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  enviro-segment '<params-json>'    Run one segmentation and print the result JSON")
	fmt.Println("  enviro-segment @params.json       Same, reading the parameters from a file")
	fmt.Println("  enviro-segment serve [addr]       Serve POST /segment over HTTP")
	fmt.Println()
	fmt.Println("Parameters JSON:")
	fmt.Println(`  {"imagePath": "...", "outputDir": "...", "modelType": "deforestation|mining|forest_fire|agriculture|urban_expansion|water_body|general"}`)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  ENVIRO_SEGMENT_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println("  ENVIRO_SEGMENT_JPEG_QUALITY=90    Result image JPEG quality (1-100)")
	fmt.Println("  ENVIRO_SEGMENT_ADDR=:8080         Listen address for serve mode")
}
