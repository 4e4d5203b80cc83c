package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iniwex5/usim-go/pkg/aka"
	"github.com/iniwex5/usim-go/pkg/logger"
	"github.com/iniwex5/usim-go/pkg/sim"
)

var (
	envPrefix string
	logLevel  string
	logFormat string
)

// rootCmd 不带子命令时的入口
var rootCmd = &cobra.Command{
	Use:          "usim-aka",
	Short:        "软 USIM 的 AKA 鉴权计算工具 (Milenage / XOR)",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 日志写 stderr，stdout 只留计算结果
		l, err := logger.New(logLevel, logFormat, os.Stderr)
		if err != nil {
			return err
		}
		logger.Replace(l)
		return nil
	},
}

// Execute 由 main 调用
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logger.Err(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPrefix, "env-prefix", sim.DefaultEnvPrefix, "Profile 环境变量前缀")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "日志级别 (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "日志格式 (console, json)")
}

// loadEvaluator 从环境变量读取 Profile 并创建 Evaluator
func loadEvaluator() (*sim.Profile, *aka.Evaluator, error) {
	p, err := sim.LoadProfile(envPrefix)
	if err != nil {
		return nil, nil, err
	}
	k, opc, _, err := p.Keys()
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, sim.ErrInvalidProfile)
	}
	eval, err := aka.NewEvaluator(p.Algorithm, k, opc)
	if err != nil {
		return nil, nil, err
	}
	return p, eval, nil
}
