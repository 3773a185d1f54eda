package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dustfield/audio"
	"github.com/lixenwraith/dustfield/engine"
	"github.com/lixenwraith/dustfield/terminal"
)

const (
	logDir      = "logs"
	logFileName = "debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to a file under logDir when
// debug is on and discards it otherwise. The terminal belongs to the
// visualizer, so log output never touches stdout or stderr.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir,
			fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(file)
	return file
}

func main() {
	// Panic recovery: restore the terminal before the trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDUSTFIELD CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	logFile := setupLogging(os.Getenv("DUSTFIELD_DEBUG") != "")
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	defer screen.DisableMouse()

	cues, err := audio.NewCues()
	if err != nil {
		// Non-fatal, the visualizer runs silent
		log.Printf("audio initialization failed: %v", err)
	} else {
		defer cues.Close()
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	loop := engine.NewLoop(screen, engine.NewSystemTimeProvider(), rng, cues)
	if err := loop.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "dustfield: %v\n", err)
		os.Exit(1)
	}
}
