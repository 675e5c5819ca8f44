/*
Copyright © 2025 Slidegen Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"

	"github.com/k1LoW/tail"
	slogmulti "github.com/samber/slog-multi"
	"github.com/slidedeck/slidegen/logger/spin"
)

// tb keeps the most recent log lines in memory so they can be dumped
// to error.json when a command fails.
var tb = tail.New(100)

// newLogger fans log records out to the terminal progress handler and
// to the in-memory ring buffer as JSON.
func newLogger() (*slog.Logger, error) {
	jsonHandler := slog.NewJSONHandler(tb, &slog.HandlerOptions{Level: slog.LevelDebug})
	spinHandler, err := spin.New(jsonHandler)
	if err != nil {
		return nil, err
	}
	return slog.New(slogmulti.Fanout(
		jsonHandler,
		spinHandler,
	)), nil
}
