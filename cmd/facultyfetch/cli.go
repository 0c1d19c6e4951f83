package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/facultyfetch"
	"github.com/fwojciec/facultyfetch/dispatch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Records    []facultyfetch.Record
	Dispatcher *dispatch.Dispatcher
}

// CLI defines the command-line interface structure for Kong.
// Every flag is optional; the defaults read data.csv with commas and fetch
// without timeout or pacing.
type CLI struct {
	File      string        `short:"f" default:"data.csv" env:"FACULTYFETCH_FILE" help:"Faculty records file"`
	Delimiter string        `short:"d" default:"," help:"Field delimiter"`
	Timeout   time.Duration `short:"t" default:"0s" help:"Fetch timeout per request (0 disables)"`
	RPS       float64       `name:"rps" default:"0" help:"Requests per second per host (0 disables)"`
	Verbose   bool          `short:"v" help:"Log operations to stderr"`
}

// LookupCmd runs the interactive faculty lookup.
type LookupCmd struct{}
