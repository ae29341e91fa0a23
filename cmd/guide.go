package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rnwolfe/zenith/internal/coach"
	"github.com/rnwolfe/zenith/internal/config"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var guideRaw bool

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Read a short AI-written guide",
	Long: `Read a short guide written by the AI coach. Topics:

  meditation     How to Meditate
  subconscious   Power of the Subconscious Mind
  exercise       Sunrise Exercise Benefits

Without a topic, the list is printed.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: coach.TopicKeys(),
	RunE:      runGuide,
}

func init() {
	guideCmd.Flags().BoolVar(&guideRaw, "raw", false, "Print markdown without rendering")
}

func runGuide(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println()
		for _, t := range coach.Topics {
			fmt.Printf("  %s  %s\n", ui.KeyStyle.Render(fmt.Sprintf("%-13s", t.Key)), t.Title)
		}
		fmt.Println()
		ui.Tip("`zenith guide meditation` to read one.")
		return nil
	}

	topic := strings.ToLower(args[0])
	if _, ok := coach.LookupTopic(topic); !ok {
		return fmt.Errorf("unknown topic %q (choose from: %s)", args[0], strings.Join(coach.TopicKeys(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger().Warn("loading config failed, using defaults", zap.Error(err))
		cfg = &config.Config{}
	}

	ctx, cancel := context.WithTimeout(cmdContext(cmd), coachTimeout)
	defer cancel()

	coachStatus(cmd, ui.IsStdoutTTY())
	return writeGuide(ctx, newCoach(cfg), topic)
}

func writeGuide(ctx context.Context, gw coach.GuideWriter, topic string) error {
	text, err := gw.Guide(ctx, topic)
	if errors.Is(err, coach.ErrGuideUnavailable) {
		appLogger().Debug("guide failed", zap.Error(err))
		return errors.New(coach.RetryMessage(topic))
	}
	if err != nil {
		return err
	}
	return ui.WriteMarkdown(os.Stdout, text, ui.IsStdoutTTY(), guideRaw)
}
