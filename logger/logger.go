// Package logger provides adapters for popular logger libraries to work with memtree's Logger interface.
//
// The adapters allow you to use your existing logger with memtree without writing boilerplate.
// Note that the standard library's slog.Logger already implements memtree.Logger directly.
//
// Example with zap:
//
//	import (
//	    "github.com/alexhholmes/memtree"
//	    "github.com/alexhholmes/memtree/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//	    defer zapLogger.Sync()
//
//	    tree := memtree.New[int](32, memtree.WithLogger(logger.NewZap(zapLogger)))
//	    tree.Insert(42)
//	}
package logger
