package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iniwex5/usim-go/pkg/crypto"
)

func init() {
	rootCmd.AddCommand(opcCmd)

	opcCmd.Flags().BytesHexP("key", "k", nil, "K (16 字节十六进制)")
	opcCmd.Flags().BytesHex("op", nil, "OP (16 字节十六进制)")
	opcCmd.MarkFlagRequired("key")
	opcCmd.MarkFlagRequired("op")
}

// opcCmd 由 K 和 OP 计算 OPc，不读取 Profile
var opcCmd = &cobra.Command{
	Use:          "opc",
	Short:        "由 K 和 OP 计算 OPc",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, _ := cmd.Flags().GetBytesHex("key")
		op, _ := cmd.Flags().GetBytesHex("op")

		opc, err := crypto.ComputeOPc(k, op)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%x\n", opc)
		return nil
	},
}
