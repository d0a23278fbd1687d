// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package pbar

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ostafen/sniff/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

// ProgressBarState holds all the data needed to render the progress bar
type ProgressBarState struct {
	mu  sync.Mutex
	out io.Writer

	TotalFiles         int
	ProcessedFiles     int
	IdentifiedFiles    int
	SniffedBytes       int64
	StartTime          time.Time
	LastUpdateTime     time.Time
	LastProcessedFiles int
}

// NewProgressBarState initializes a new ProgressBarState
func NewProgressBarState(out io.Writer, totalFiles int) *ProgressBarState {
	return &ProgressBarState{
		out:            out,
		TotalFiles:     totalFiles,
		StartTime:      time.Now(),
		LastUpdateTime: time.Now(),
	}
}

// Add records a classified file and refreshes the line when due. It is
// safe to call from multiple goroutines.
func (pbs *ProgressBarState) Add(identified bool, sniffed int64) {
	pbs.mu.Lock()
	defer pbs.mu.Unlock()

	pbs.ProcessedFiles++
	pbs.SniffedBytes += sniffed
	if identified {
		pbs.IdentifiedFiles++
	}
	pbs.render(false)
}

// Render updates and prints the progress bar line
func (pbs *ProgressBarState) Render(force bool) {
	pbs.mu.Lock()
	defer pbs.mu.Unlock()

	pbs.render(force)
}

func (pbs *ProgressBarState) render(force bool) {
	if !force && time.Since(pbs.LastUpdateTime) < MinRefreshRate {
		return
	}

	percentage := 100.0
	if pbs.TotalFiles > 0 {
		percentage = float64(pbs.ProcessedFiles) / float64(pbs.TotalFiles) * 100
	}

	barLength := 20
	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	elapsed := time.Since(pbs.LastUpdateTime).Seconds()
	var filesPerSec float64
	if elapsed > 0 {
		filesPerSec = float64(pbs.ProcessedFiles-pbs.LastProcessedFiles) / elapsed
	}

	var etaStr string
	if filesPerSec > 0 {
		etaSeconds := float64(pbs.TotalFiles-pbs.ProcessedFiles) / filesPerSec
		etaStr = fmt.Sprintf("%02d:%02d:%02d remaining",
			int(etaSeconds/3600),
			int(etaSeconds/60)%60,
			int(etaSeconds)%60)
	} else {
		etaStr = "calculating..."
	}

	pbs.LastUpdateTime = time.Now()
	pbs.LastProcessedFiles = pbs.ProcessedFiles

	// \r moves the cursor to the beginning of the line; trailing spaces
	// clear leftovers of a previous longer line
	fmt.Fprintf(pbs.out, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d files) | Identified: %d | Sniffed: %s | @ %.0f files/s [%s]    ",
		bar,
		percentage,
		pbs.ProcessedFiles,
		pbs.TotalFiles,
		pbs.IdentifiedFiles,
		format.FormatBytes(pbs.SniffedBytes),
		filesPerSec,
		etaStr)
}

// Finish prints the final state and moves to the next line.
func (pbs *ProgressBarState) Finish() {
	pbs.Render(true)
	fmt.Fprintln(pbs.out)
}
