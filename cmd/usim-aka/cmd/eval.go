package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iniwex5/usim-go/pkg/aka"
	"github.com/iniwex5/usim-go/pkg/sim"
)

var errAuthFailed = errors.New("AUTN verification failed")

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BytesHexP("rand", "r", nil, "RAND (16 字节十六进制)")
	evalCmd.Flags().BytesHexP("autn", "a", nil, "AUTN (16 字节十六进制)")
	evalCmd.MarkFlagRequired("rand")
	evalCmd.MarkFlagRequired("autn")
}

// evalCmd 终端侧：校验 AUTN 并输出 RES/CK/IK
var evalCmd = &cobra.Command{
	Use:          "eval",
	Short:        "校验 AUTN 并计算 RES/CK/IK",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rand, _ := cmd.Flags().GetBytesHex("rand")
		autn, _ := cmd.Flags().GetBytesHex("autn")

		p, err := sim.LoadProfile(envPrefix)
		if err != nil {
			return err
		}
		s, err := sim.NewSoftSIM(p)
		if err != nil {
			return err
		}
		defer s.Close()

		v, err := s.Authenticate(rand, autn)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "RESULT:   %s\n", v.Result)
		fmt.Fprintf(w, "RES:      %x\n", v.RES)
		fmt.Fprintf(w, "CK:       %x\n", v.CK)
		fmt.Fprintf(w, "IK:       %x\n", v.IK)
		fmt.Fprintf(w, "AK:       %x\n", v.AK)
		fmt.Fprintf(w, "SQN:      %x\n", v.SQN)
		fmt.Fprintf(w, "AMF:      %x\n", v.AMF)
		fmt.Fprintf(w, "MAC-A:    %x\n", v.MAC)
		fmt.Fprintf(w, "SQN^AK:   %x\n", v.AKxorSQN)

		if v.Result != aka.AuthOK {
			return errAuthFailed
		}
		return nil
	},
}
