package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iniwex5/usim-go/pkg/crypto"
)

func init() {
	rootCmd.AddCommand(autnCmd)

	autnCmd.Flags().BytesHexP("rand", "r", nil, "RAND (16 字节十六进制)，为空时随机生成")
	autnCmd.Flags().Uint64P("sqn", "s", 0, "SQN (48 位)")
	autnCmd.Flags().BytesHex("amf", nil, "AMF (2 字节十六进制)，默认取 Profile")
}

// autnCmd 网络侧：根据 Profile 生成 AUTN，用于构造测试向量
var autnCmd = &cobra.Command{
	Use:          "autn",
	Short:        "网络侧生成 AUTN",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rand, _ := cmd.Flags().GetBytesHex("rand")
		sqn, _ := cmd.Flags().GetUint64("sqn")
		amf, _ := cmd.Flags().GetBytesHex("amf")

		if sqn > 0xffffffffffff {
			return fmt.Errorf("SQN %#x exceeds 48 bits", sqn)
		}

		p, eval, err := loadEvaluator()
		if err != nil {
			return err
		}
		if len(amf) == 0 {
			_, _, amf, _ = p.Keys()
		}

		if len(rand) == 0 {
			if rand, err = crypto.NewRAND(); err != nil {
				return err
			}
		}

		autn, err := eval.GenerateAUTN(rand, crypto.EncodeSQN(sqn), amf)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "RAND: %x\nAUTN: %x\n", rand, autn)
		return nil
	},
}
