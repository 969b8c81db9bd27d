package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardgen/internal/config"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/pkg/clock"
	"github.com/KirkDiggler/cardgen/internal/pkg/idgen"
	"github.com/KirkDiggler/cardgen/internal/services/card"
)

var (
	renderType        string
	renderOrientation string
	renderFields      []string
	renderPhoto       string
	renderFormat      string
	renderQuality     int
	renderOut         string
	renderBackend     string
	renderDate        string
	renderSeed        uint64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one card to a PNG or PDF file",
	Example: `  cardgen render --type typology --set name="Ada" --set mbti=INTJ
  cardgen render --type developer --set language=go --photo me.jpg --format pdf --out dev.pdf`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderType, "type", string(entities.CardTypeTypology), "card type: typology, faction or developer")
	renderCmd.Flags().StringVar(&renderOrientation, "orientation", "", "landscape or portrait (typology only)")
	renderCmd.Flags().StringArrayVar(&renderFields, "set", nil, "field value as name=value, repeatable")
	renderCmd.Flags().StringVar(&renderPhoto, "photo", "", "photo file to place on the card")
	renderCmd.Flags().StringVar(&renderFormat, "format", string(export.FormatPNG), "png or pdf")
	renderCmd.Flags().IntVar(&renderQuality, "quality", 0, "pixel ratio 1-8 (default per card type)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output file (default <name>_<suffix>.<ext>)")
	renderCmd.Flags().StringVar(&renderBackend, "backend", "", "auto, chrome or raster (default from CARDGEN_EXPORT_BACKEND)")
	renderCmd.Flags().StringVar(&renderDate, "date", "", "issue date as YYYY-MM-DD (default today)")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "seed for the card number suffix (default random)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if renderBackend != "" {
		cfg.ExportBackend = strings.ToLower(renderBackend)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	setupLogging(os.Stderr, cfg.LogLevel, false)

	fields, err := parseFields(renderFields)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	clk := clock.New()
	if renderDate != "" {
		at, err := time.ParseInLocation(time.DateOnly, renderDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", renderDate, err)
		}
		clk = &clock.Fixed{At: at}
	}

	ctx := cmd.Context()
	roller := cardRoller(renderSeed, cmd.Flags().Changed("seed"))
	a, err := newApp(ctx, cfg, clk, roller)
	if err != nil {
		return err
	}
	defer a.Close()

	created, err := a.cards.CreateCard(ctx, &card.CreateCardInput{
		Type:        entities.CardType(renderType),
		Orientation: entities.Orientation(renderOrientation),
		Fields:      fields,
	})
	if err != nil {
		return err
	}
	cardID := created.Card.ID

	if renderPhoto != "" {
		data, err := os.ReadFile(renderPhoto)
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		uploaded, err := a.cards.UploadPhoto(ctx, &card.UploadPhotoInput{CardID: cardID, Data: data})
		if err != nil {
			return err
		}
		if !uploaded.Accepted {
			fmt.Fprintf(cmd.ErrOrStderr(), "photo %s could not be read, using the theme symbol\n", renderPhoto)
		}
	}

	exported, err := a.cards.ExportCard(ctx, &card.ExportCardInput{
		CardID:  cardID,
		Format:  format,
		Quality: renderQuality,
	})
	if err != nil {
		return err
	}

	download, err := a.cards.GetExport(ctx, &card.GetExportInput{ExportID: exported.Export.ID})
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = exported.Export.Filename
	}
	if err := os.WriteFile(out, download.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s #%s -> %s (%d bytes, %s)\n",
		created.Card.Type, created.Card.Identifier, abs, len(download.Data), exported.Export.Backend)

	return nil
}

// cardRoller returns a seeded roller when a seed was given so the same
// flags always print the same card number.
func cardRoller(seed uint64, seeded bool) dice.Roller {
	if seeded {
		return idgen.NewSeededRoller(seed)
	}
	return dice.DefaultRoller
}

// parseFields turns name=value pairs into a field map
func parseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, want name=value", pair)
		}
		fields[name] = value
	}
	return fields, nil
}
