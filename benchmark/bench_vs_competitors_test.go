package benchmark_test

import (
	"context"
	"io"
	"testing"

	"github.com/dzonerzy/go-cmdkit/cmdkit"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Benchmark simple CLI with basic options
// Tests end-to-end dispatch with int and bool options
// All three execute a command with options for fair comparison

func BenchmarkSimpleCLI_CmdKit(b *testing.B) {
	app := cmdkit.New("bench", "benchmark app")
	app.IO().WithOut(io.Discard).WithErr(io.Discard)
	app.Command("run", "Run benchmark").
		Int('p', "port", "Server port").
		Flag('v', "verbose", "Verbose output").
		Action(func(_ *cmdkit.Context) error { return nil })

	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(context.Background(), args)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().IntP("port", "p", 8080, "Server port")
		runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "run",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
						&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark string-heavy parsing
// Tests attached (--opt=value) and separate (--opt value) string forms

func BenchmarkStringOptions_CmdKit(b *testing.B) {
	app := cmdkit.New("bench", "benchmark app")
	app.IO().WithOut(io.Discard).WithErr(io.Discard)
	app.Command("deploy", "Deploy application").
		String('e', "env", "Target environment").
		String('r', "region", "Target region").
		String('t', "tag", "Image tag").
		Action(func(_ *cmdkit.Context) error { return nil })

	args := []string{"deploy", "--env=production", "--region", "eu-west-1", "-t", "v1.2.3"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(context.Background(), args)
	}
}

func BenchmarkStringOptions_Cobra(b *testing.B) {
	args := []string{"deploy", "--env=production", "--region", "eu-west-1", "-t", "v1.2.3"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		deployCmd := &cobra.Command{
			Use: "deploy",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		deployCmd.Flags().StringP("env", "e", "", "Target environment")
		deployCmd.Flags().StringP("region", "r", "", "Target region")
		deployCmd.Flags().StringP("tag", "t", "", "Image tag")
		rootCmd.AddCommand(deployCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkStringOptions_Urfave(b *testing.B) {
	args := []string{"bench", "deploy", "--env=production", "--region", "eu-west-1", "-t", "v1.2.3"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "deploy",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "env", Aliases: []string{"e"}, Usage: "Target environment"},
						&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "Target region"},
						&cli.StringFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Image tag"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark positional-heavy invocations
// Tests argument collection alongside option parsing

func BenchmarkPositionals_CmdKit(b *testing.B) {
	app := cmdkit.New("bench", "benchmark app")
	app.IO().WithOut(io.Discard).WithErr(io.Discard)
	app.Command("copy", "Copy files").
		Flag('f', "force", "Overwrite existing files").
		Action(func(_ *cmdkit.Context) error { return nil })

	args := []string{"copy", "--force", "a.txt", "b.txt", "c.txt", "d.txt", "dest/"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(context.Background(), args)
	}
}

func BenchmarkPositionals_Cobra(b *testing.B) {
	args := []string{"copy", "--force", "a.txt", "b.txt", "c.txt", "d.txt", "dest/"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		copyCmd := &cobra.Command{
			Use: "copy",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		copyCmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
		rootCmd.AddCommand(copyCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkPositionals_Urfave(b *testing.B) {
	args := []string{"bench", "copy", "--force", "a.txt", "b.txt", "c.txt", "d.txt", "dest/"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "copy",
					Flags: []cli.Flag{
						&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Overwrite existing files"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}
