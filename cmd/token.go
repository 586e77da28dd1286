package cmd

import (
	"fmt"

	internalApp "github.com/haierkeys/notes-app-service/internal/app"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type tokenFlags struct {
	config   string
	uid      int64
	nickname string
}

// issueToken 用配置中的密钥与有效期签发登录 Token
func issueToken(cfg *internalApp.AppConfig, uid int64, nickname string) (string, error) {
	if uid <= 0 {
		return "", fmt.Errorf("uid must be positive, got %d", uid)
	}
	tm := pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    pkgapp.DefaultTokenIssuer,
		Expiry:    cfg.GetTokenExpiry(),
	})
	return tm.Generate(uid, nickname, "")
}

func init() {
	flags := new(tokenFlags)

	var tokenCommand = &cobra.Command{
		Use:   "token --uid N [--nickname name] [-c config_file]",
		Short: "Issue a sign-in token // 签发登录 Token",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := resolveConfigFile(flags.config)
			if err != nil {
				return err
			}

			cfg, _, err := internalApp.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.IsDefaultSecret() {
				bootstrapLogger.Warn("issuing a token signed with the default secret key")
			}

			token, err := issueToken(cfg, flags.uid, flags.nickname)
			if err != nil {
				return err
			}

			bootstrapLogger.Info("token issued",
				zap.Int64("uid", flags.uid),
				zap.Duration("expiry", cfg.GetTokenExpiry()))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	rootCmd.AddCommand(tokenCommand)
	fs := tokenCommand.Flags()
	fs.StringVarP(&flags.config, "config", "c", "", "config file")
	fs.Int64Var(&flags.uid, "uid", 0, "user id")
	fs.StringVar(&flags.nickname, "nickname", "", "user nickname")
	_ = tokenCommand.MarkFlagRequired("uid")
}
