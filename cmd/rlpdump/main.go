package main

import (
	"fmt"
	"os"

	"rlpwire/cli"
	"rlpwire/config"
	"rlpwire/log"
	"rlpwire/rlp"
	"rlpwire/version"

	"github.com/spf13/cobra"
)

var logger = log.WithModule("rlpdump")

var rootCmd = &cobra.Command{
	Use:          "rlpdump [hex]",
	Short:        "Decodes RLP-encoded data and prints its structure.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if lvl, err := log.NewLevel(cfg.LogLevel); err == nil {
			log.SetLevel(lvl)
		}

		in, err := cli.ReadInput(cmd, args, cfg.Dump.MaxPayloadBytes)
		if err != nil {
			return err
		}
		logger.Debug("decoding input", "bytes", len(in))

		node, err := rlp.Decode(in)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString(cli.FlagFormat)
		if format == "" {
			format = cfg.Dump.Format
		}
		switch format {
		case "tree":
			printTree(os.Stdout, node)
		case "summary":
			printSummary(os.Stdout, node)
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes the default config file to the home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir := cli.GetHomeDir(cmd)
		if err := config.InitHomeDir(homeDir); err != nil {
			return err
		}
		logger.Info("wrote default config", "home", homeDir)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints version information.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.UserAgent)
	},
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir := cli.GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		cfg := config.DefaultConfig
		return &cfg, nil
	}
	return config.ReadConfigFile(homeDir)
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.rlpdump", "Home directory for the tool's configuration.")
	rootCmd.Flags().String(cli.FlagFormat, "", "Output format. Can be \"tree\" or \"summary\".")
	rootCmd.Flags().Bool(cli.FlagHex, false, "Treat piped stdin as hex rather than raw bytes.")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
