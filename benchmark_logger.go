package cliffnet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BenchmarkResult captures the timing of repeated forward passes
type BenchmarkResult struct {
	Name       string        `json:"name"`
	Status     string        `json:"status"` // "pass", "fail"
	Iterations int           `json:"iterations,omitempty"`
	Batch      int           `json:"batch,omitempty"`
	Workers    int           `json:"workers,omitempty"`
	NsPerOp    float64       `json:"ns_per_op,omitempty"`
	GFLOPS     float64       `json:"gflops,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	CPU        string        `json:"cpu"`
	Error      string        `json:"error,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// BenchmarkLogger appends results to a JSON session file, rewriting the
// file after every result so a crash loses nothing.
type BenchmarkLogger struct {
	mu          sync.Mutex
	results     []BenchmarkResult
	sessionFile string
}

// NewBenchmarkLogger creates dir if needed and starts a session file named
// after sessionName and the current time.
func NewBenchmarkLogger(dir, sessionName string) (*BenchmarkLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405")
	bl := &BenchmarkLogger{
		sessionFile: filepath.Join(dir, fmt.Sprintf("%s_%s.json", sessionName, timestamp)),
	}
	return bl, bl.flush()
}

// SessionFile returns the path results are written to.
func (bl *BenchmarkLogger) SessionFile() string {
	return bl.sessionFile
}

// Log records one result and flushes the session file.
func (bl *BenchmarkLogger) Log(result BenchmarkResult) error {
	bl.mu.Lock()
	defer bl.mu.Unlock()

	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}
	bl.results = append(bl.results, result)
	return bl.flush()
}

// Results returns a copy of the results logged so far.
func (bl *BenchmarkLogger) Results() []BenchmarkResult {
	bl.mu.Lock()
	defer bl.mu.Unlock()
	return append([]BenchmarkResult(nil), bl.results...)
}

func (bl *BenchmarkLogger) flush() error {
	data, err := json.MarshalIndent(bl.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(bl.sessionFile, data, 0644)
}

// forwardFLOPs counts multiplies and adds of one network forward pass:
// 64 products and 64 additions per multivector pair, plus the bias.
func forwardFLOPs(n *Network, batch int) float64 {
	var flops float64
	for _, l := range n.layers {
		pairs := float64(batch * l.out * l.in)
		flops += pairs*2*NumComponents*NumComponents + float64(batch*l.out*NumComponents)
	}
	return flops
}

// BenchmarkForward times iterations forward passes of n over x.
func BenchmarkForward(ctx context.Context, name string, n *Network, x *Tensor, iterations int) BenchmarkResult {
	result := BenchmarkResult{
		Name:       name,
		Iterations: iterations,
		Workers:    n.layers[0].workers,
		CPU:        Features().String(),
		Timestamp:  time.Now(),
	}
	if x != nil {
		result.Batch = x.batch
	}
	if iterations <= 0 {
		result.Status = "fail"
		result.Error = "iterations must be positive"
		return result
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := n.ForwardContext(ctx, x); err != nil {
			result.Status = "fail"
			result.Error = err.Error()
			return result
		}
	}
	result.Duration = time.Since(start)
	result.Status = "pass"
	result.NsPerOp = float64(result.Duration.Nanoseconds()) / float64(iterations)
	if result.NsPerOp > 0 {
		result.GFLOPS = forwardFLOPs(n, result.Batch) / result.NsPerOp
	}
	return result
}
