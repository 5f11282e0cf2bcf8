package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/Gaimin-io-Limited/solana-programs/cmd/pfpclaim/decode"
	"github.com/Gaimin-io-Limited/solana-programs/cmd/pfpclaim/derive"
	"github.com/Gaimin-io-Limited/solana-programs/cmd/pfpclaim/run"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var cmd = cobra.Command{
	Use:   "pfpclaim",
	Short: "GMRX claim program tooling",
}

func init() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		&decode.Cmd,
		&derive.Cmd,
		&run.Cmd,
	)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	cobra.CheckErr(cmd.ExecuteContext(ctx))
}
