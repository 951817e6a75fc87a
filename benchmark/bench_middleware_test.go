//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"context"
	"io"
	"testing"

	"github.com/dzonerzy/go-cmdkit/cmdkit"
	mw "github.com/dzonerzy/go-cmdkit/middleware"
)

// Category: middleware

func BenchmarkMiddlewareChain(b *testing.B) {
	app := cmdkit.New("bench", "bench")
	app.IO().WithOut(io.Discard).WithErr(io.Discard)
	app.Command("run", "").
		Flag('v', "verbose", "").
		Use(mw.Logger(mw.WithOutput(io.Discard)), mw.RecoveryToError()).
		Action(func(_ *cmdkit.Context) error { return nil })

	args := []string{"run", "-v"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(context.Background(), args)
	}
}

func BenchmarkDispatchNoMiddleware(b *testing.B) {
	app := cmdkit.New("bench", "bench")
	app.IO().WithOut(io.Discard).WithErr(io.Discard)
	app.Command("run", "").
		Flag('v', "verbose", "").
		Action(func(_ *cmdkit.Context) error { return nil })

	args := []string{"run", "-v"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(context.Background(), args)
	}
}

// NOTE: micro-benchmarks for individual middleware are exercised via the chain benchmark above.
// Keeping chain-based benchmarks avoids duplicating mock context plumbing here.
