package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iniwex5/usim-go/pkg/crypto"
)

func init() {
	rootCmd.AddCommand(autsCmd)

	autsCmd.Flags().BytesHexP("rand", "r", nil, "RAND (16 字节十六进制)")
	autsCmd.Flags().Uint64P("sqn", "s", 0, "终端侧 SQN_MS (48 位)")
	autsCmd.MarkFlagRequired("rand")
}

// autsCmd 生成重同步参数 AUTS，仅 Milenage
var autsCmd = &cobra.Command{
	Use:          "auts",
	Short:        "生成重同步参数 AUTS",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rand, _ := cmd.Flags().GetBytesHex("rand")
		sqn, _ := cmd.Flags().GetUint64("sqn")

		if sqn > 0xffffffffffff {
			return fmt.Errorf("SQN %#x exceeds 48 bits", sqn)
		}

		_, eval, err := loadEvaluator()
		if err != nil {
			return err
		}
		auts, err := eval.GenerateAUTS(rand, crypto.EncodeSQN(sqn))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%x\n", auts)
		return nil
	},
}
