package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"storyquest-backend/internal/config"
)

var (
	mu       sync.Mutex
	appLog   *log.Logger
	debugOn  bool
	initOnce sync.Once
)

// Init wires the process logger to stdout plus a size-rotated file.
// Safe to call more than once; the first call wins.
func Init(cfg config.LogConfig) {
	initOnce.Do(func() {
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "storyquest.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		w := io.MultiWriter(os.Stdout, rotated)
		appLog = log.New(w, "", log.Ldate|log.Ltime)
		log.SetOutput(w)
		debugOn = os.Getenv("LOG_DEBUG") == "true"
	})
}

func write(level, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if appLog == nil {
		appLog = log.New(os.Stdout, "", log.Ldate|log.Ltime)
	}
	appLog.Printf("%s: %s", level, fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	if debugOn {
		write("DEBUG", format, v...)
	}
}

func Info(format string, v ...interface{}) {
	write("INFO", format, v...)
}

func Warn(format string, v ...interface{}) {
	write("WARNING", format, v...)
}

func Error(format string, v ...interface{}) {
	write("ERROR", format, v...)
}
