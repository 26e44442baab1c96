// Package main runs the generator benchmarks and outputs results to JSON/Markdown.
// Run with: go run benchmarks/run_benchmarks.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BenchmarkResults holds all benchmark data
type BenchmarkResults struct {
	Timestamp   string           `json:"timestamp"`
	Environment Environment      `json:"environment"`
	Suites      map[string]Suite `json:"suites"`
	Summary     Summary          `json:"summary"`
}

type Environment struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPU       string `json:"cpu"`
	NumCPU    int    `json:"num_cpu"`
	GoVersion string `json:"go_version"`
}

type Suite struct {
	Benchmarks []Benchmark `json:"benchmarks"`
}

type Benchmark struct {
	Name        string  `json:"name"`
	NsPerOp     float64 `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
}

type Summary struct {
	V1OpsPerSec         float64 `json:"v1_ops_per_sec"`
	V1ParallelOpsPerSec float64 `json:"v1_parallel_ops_per_sec"`
	V2OpsPerSec         float64 `json:"v2_ops_per_sec"`
	V2ParallelOpsPerSec float64 `json:"v2_parallel_ops_per_sec"`
	V2ScopeOpsPerSec    float64 `json:"v2_scope_ops_per_sec"`
}

// suite is one go test -bench invocation.
type suite struct {
	name    string
	pattern string
	pkg     string
}

var suites = []suite{
	{"v1", "BenchmarkNewV1", "./pkg/cuid/"},
	{"v2", "BenchmarkNew$|BenchmarkNewParallel|BenchmarkV2Scope|BenchmarkNewV2Big", "./pkg/cuid/"},
	{"base36", ".", "./pkg/base36/"},
	{"fingerprint", ".", "./internal/fingerprint/"},
	{"counter", ".", "./internal/counter/"},
	{"entropy", ".", "./internal/entropy/"},
}

func main() {
	fmt.Println("==========================================")
	fmt.Println("   CUID BENCHMARK SUITE")
	fmt.Println("==========================================")
	fmt.Println()

	results := BenchmarkResults{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Environment: Environment{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPU:       getCPUInfo(),
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
		Suites: make(map[string]Suite),
	}

	for _, s := range suites {
		fmt.Printf("Running %s benchmarks...\n", s.name)
		results.Suites[s.name] = Suite{Benchmarks: runBenchmarks(s.pattern, s.pkg)}
	}

	results.Summary = calculateSummary(results.Suites)

	if err := os.MkdirAll(filepath.Join("benchmarks", "results"), 0755); err != nil {
		fmt.Printf("Error creating results directory: %v\n", err)
		os.Exit(1)
	}

	jsonPath := "benchmarks/results/latest.json"
	if err := writeJSON(results, jsonPath); err != nil {
		fmt.Printf("Error writing JSON: %v\n", err)
	} else {
		fmt.Printf("\nJSON results: %s\n", jsonPath)
	}

	mdPath := "benchmarks/results/LATEST.md"
	if err := writeMarkdown(results, mdPath); err != nil {
		fmt.Printf("Error writing Markdown: %v\n", err)
	} else {
		fmt.Printf("Markdown results: %s\n", mdPath)
	}

	printSummary(results)
}

func getCPUInfo() string {
	if runtime.GOOS == "linux" {
		data, err := os.ReadFile("/proc/cpuinfo")
		if err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				if strings.HasPrefix(line, "model name") {
					parts := strings.SplitN(line, ":", 2)
					if len(parts) == 2 {
						return strings.TrimSpace(parts[1])
					}
				}
			}
		}
	}
	return "unknown"
}

func runBenchmarks(pattern, pkg string) []Benchmark {
	cmd := exec.Command("go", "test", "-run=^$", "-bench="+pattern, "-benchtime=2s", "-benchmem", pkg)
	output, _ := cmd.CombinedOutput()

	return parseBenchmarkOutput(string(output))
}

// benchLine matches: BenchmarkName-N    iterations    ns/op    bytes/op    allocs/op
var benchLine = regexp.MustCompile(`(Benchmark[\w/]+)-\d+\s+(\d+)\s+([\d.]+)\s+ns/op\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

func parseBenchmarkOutput(output string) []Benchmark {
	var benchmarks []Benchmark

	for _, match := range benchLine.FindAllStringSubmatch(output, -1) {
		nsPerOp, _ := strconv.ParseFloat(match[3], 64)
		bytesPerOp, _ := strconv.ParseInt(match[4], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(match[5], 10, 64)

		opsPerSec := 0.0
		if nsPerOp > 0 {
			opsPerSec = 1e9 / nsPerOp
		}

		benchmarks = append(benchmarks, Benchmark{
			Name:        match[1],
			NsPerOp:     nsPerOp,
			OpsPerSec:   opsPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return benchmarks
}

func calculateSummary(suites map[string]Suite) Summary {
	summary := Summary{}

	for _, b := range suites["v1"].Benchmarks {
		switch b.Name {
		case "BenchmarkNewV1":
			summary.V1OpsPerSec = b.OpsPerSec
		case "BenchmarkNewV1Parallel":
			summary.V1ParallelOpsPerSec = b.OpsPerSec
		}
	}
	for _, b := range suites["v2"].Benchmarks {
		switch b.Name {
		case "BenchmarkNew":
			summary.V2OpsPerSec = b.OpsPerSec
		case "BenchmarkNewParallel":
			summary.V2ParallelOpsPerSec = b.OpsPerSec
		case "BenchmarkV2Scope":
			summary.V2ScopeOpsPerSec = b.OpsPerSec
		}
	}

	return summary
}

func writeJSON(results BenchmarkResults, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeMarkdown(results BenchmarkResults, path string) error {
	var sb strings.Builder

	sb.WriteString("# cuid Benchmark Results\n\n")
	fmt.Fprintf(&sb, "**Generated**: %s\n\n", results.Timestamp)
	sb.WriteString("## Environment\n\n")
	fmt.Fprintf(&sb, "- **OS**: %s/%s\n", results.Environment.OS, results.Environment.Arch)
	fmt.Fprintf(&sb, "- **CPU**: %s (%d cores)\n", results.Environment.CPU, results.Environment.NumCPU)
	fmt.Fprintf(&sb, "- **Go**: %s\n\n", results.Environment.GoVersion)

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Generator | Serial | Parallel |\n")
	sb.WriteString("|-----------|--------|----------|\n")
	fmt.Fprintf(&sb, "| V1 | %.0f ids/s | %.0f ids/s |\n", results.Summary.V1OpsPerSec, results.Summary.V1ParallelOpsPerSec)
	fmt.Fprintf(&sb, "| V2 (pool) | %.0f ids/s | %.0f ids/s |\n", results.Summary.V2OpsPerSec, results.Summary.V2ParallelOpsPerSec)
	fmt.Fprintf(&sb, "| V2 (scope) | %.0f ids/s | - |\n\n", results.Summary.V2ScopeOpsPerSec)

	names := make([]string, 0, len(results.Suites))
	for name := range results.Suites {
		names = append(names, name)
	}
	sort.Strings(names)

	title := cases.Title(language.English)
	for _, name := range names {
		fmt.Fprintf(&sb, "## %s\n\n", title.String(name))
		sb.WriteString("| Benchmark | ops/sec | ns/op | B/op | allocs/op |\n")
		sb.WriteString("|-----------|---------|-------|------|----------|\n")
		for _, b := range results.Suites[name].Benchmarks {
			fmt.Fprintf(&sb, "| %s | %.0f | %.0f | %d | %d |\n",
				b.Name, b.OpsPerSec, b.NsPerOp, b.BytesPerOp, b.AllocsPerOp)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Reproducing\n\n")
	sb.WriteString("```bash\n")
	sb.WriteString("go run benchmarks/run_benchmarks.go\n")
	sb.WriteString("# Or individual packages:\n")
	for _, s := range suites {
		fmt.Fprintf(&sb, "go test -run='^$' -bench='%s' -benchtime=2s -benchmem %s\n", s.pattern, s.pkg)
	}
	sb.WriteString("```\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func printSummary(results BenchmarkResults) {
	fmt.Println()
	fmt.Println("==========================================")
	fmt.Println("              SUMMARY")
	fmt.Println("==========================================")
	fmt.Printf("V1:         %.0f ids/s (%.0f parallel)\n",
		results.Summary.V1OpsPerSec, results.Summary.V1ParallelOpsPerSec)
	fmt.Printf("V2 pool:    %.0f ids/s (%.0f parallel)\n",
		results.Summary.V2OpsPerSec, results.Summary.V2ParallelOpsPerSec)
	fmt.Printf("V2 scope:   %.0f ids/s\n", results.Summary.V2ScopeOpsPerSec)
	fmt.Println("==========================================")
}
